package domain

import (
	"fmt"
	"regexp"
	"slices"
	"time"
)

var ticketTagPattern = regexp.MustCompile(`^[A-Z0-9]*-[0-9]*$`)

// LooksLikeTicket reports whether a tag is an auto-derived ticket key
// (e.g. ABC-123). Such tags are left out of the tags report.
func LooksLikeTicket(tag string) bool {
	return ticketTagPattern.MatchString(tag)
}

// FormatDuration renders d as "3h 07m"
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// TotalDuration sums the ranges of every document
func TotalDuration(docs []Document) time.Duration {
	var total time.Duration
	for i := range docs {
		total += docs[i].TotalDuration()
	}
	return total
}

// TagTotal is one row of the tags report
type TagTotal struct {
	Tag      string
	Duration time.Duration
}

// TagsReport is the per-tag rollup of a query result
type TagsReport struct {
	Tags  []TagTotal
	Total time.Duration
}

// SummarizeTags adds each document's duration to every distinct non-ticket
// tag it carries. Total counts each document once, ticket tags included.
func SummarizeTags(docs []Document) TagsReport {
	byTag := make(map[string]time.Duration)
	var report TagsReport
	for i := range docs {
		d := docs[i].TotalDuration()
		report.Total += d
		seen := make(map[string]bool)
		for _, tag := range docs[i].Metadata.Tags {
			if seen[tag] || LooksLikeTicket(tag) {
				continue
			}
			seen[tag] = true
			byTag[tag] += d
		}
	}
	for tag, d := range byTag {
		report.Tags = append(report.Tags, TagTotal{Tag: tag, Duration: d})
	}
	slices.SortFunc(report.Tags, func(a, b TagTotal) int {
		switch {
		case a.Tag < b.Tag:
			return -1
		case a.Tag > b.Tag:
			return 1
		}
		return 0
	})
	return report
}
