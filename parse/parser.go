// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parse derives structured candidate fields from plain resume text.
//
// Every extraction rule is a deterministic pure function over the text.
// Rules never fail: a field the text does not contain is reported as absent
// (empty string or empty slice), which is a valid, expected outcome. Partial
// success is the norm with real resumes.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/resumatch/core"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Ordered most-specific first; the first pattern with a hit wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,5}[-.\s]?\d{3,5}(?:[-.\s]?\d{2,5})?`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.]\d{3}[-.]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	locationKeyed = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:location|address|city)\s*:\s*([A-Za-z][A-Za-z .]*(?:,\s*[A-Za-z][A-Za-z .]*)*)`),
		regexp.MustCompile(`(?i)\b(?:based in|located in)\s+([A-Za-z][A-Za-z .]*(?:,\s*[A-Za-z][A-Za-z .]*)*)`),
	}

	ctcPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:current\s*ctc|ctc|current\s*salary|salary|current\s*package|package)\s*[:\s]\s*(?:rs\.?\s*|inr\s*|₹\s*)?(\d+(?:\.\d+)?\s*(?:lpa|lakhs?|crores?|k)?)`),
		regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?\s*(?:lpa|lakhs?))\b(?:\s*per\s*annum)?`),
		regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?\s*(?:lakhs?|thousand|k|million))\s*per\s*annum\b`),
	}

	noticePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:notice\s*period|notice|serving\s*notice)\s*[:\s]\s*(\d+\s*(?:days?|weeks?|months?))`),
		regexp.MustCompile(`(?i)\b(?:available\s*(?:from|in)|can\s*join\s*in)\s*[:\s]\s*(\d+\s*(?:days?|weeks?|months?))`),
	}
	immediateNotice = regexp.MustCompile(`(?i)\bimmediate(?:ly)?\s*(?:available|joiner)?\b`)

	yearsPattern      = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*\+?\s*years?\b`)
	experienceKeyword = regexp.MustCompile(`(?i)\b(?:total\s*experience|experience|exp)\b`)

	nameToken = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*$`)
)

// headingWords disqualify a line from being treated as a personal name.
var headingWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true,
	"profile": true, "summary": true, "objective": true, "contact": true,
	"skills": true, "education": true, "experience": true, "projects": true,
	"software": true, "senior": true, "junior": true, "lead": true,
	"engineer": true, "developer": true, "tester": true, "manager": true,
	"analyst": true, "consultant": true, "architect": true,
}

// ExtractFields runs every extraction rule over the text and assembles the
// structured candidate fields. Empty text yields an empty record with the
// catch-all category.
func ExtractFields(text string) core.CandidateFields {
	fields := core.CandidateFields{
		FullName:        ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Location:        ExtractLocation(text),
		CurrentCTC:      ExtractCTC(text),
		NoticePeriod:    ExtractNoticePeriod(text),
		TotalExperience: ExtractExperience(text),
		Skills:          ExtractSkills(text, DefaultSkills),
	}
	fields.FirstName, fields.LastName = core.SplitFullName(fields.FullName)
	fields.Category = Categorize(text, fields.Skills)
	return fields
}

// ExtractName returns the first line of the text that looks like a personal
// name: up to four capitalized tokens, no digits, no email, not a section
// heading. Only the first five non-empty lines are considered.
func ExtractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.ContainsAny(line, "@:0123456789") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 || len(tokens) > 4 {
			continue
		}
		ok := true
		for _, tok := range tokens {
			if !nameToken.MatchString(tok) || headingWords[strings.ToLower(tok)] {
				ok = false
				break
			}
		}
		if ok {
			return strings.Join(tokens, " ")
		}
	}
	return ""
}

// ExtractEmail returns the first email-shaped substring, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring, or "". Separators
// and an optional country code are allowed; no further validation is done.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// ExtractLocation scans the first ten lines for a keyed location phrase
// ("Location:", "Based in", "City:") and falls back to a known city list
// over the whole text. First hit wins.
func ExtractLocation(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		for _, pattern := range locationKeyed {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			loc := strings.Trim(m[1], " ,.")
			if len(loc) >= 2 && len(loc) <= 100 {
				return loc
			}
		}
	}
	lower := strings.ToLower(text)
	for _, city := range knownCities {
		if containsWholeWord(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

// ExtractCTC returns the numeric-with-unit compensation substring found near
// a salary keyword, verbatim and with no currency normalization, or "".
func ExtractCTC(text string) string {
	for _, pattern := range ctcPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractNoticePeriod returns the duration substring found near a notice
// keyword, verbatim, or "". Stated immediate availability yields "Immediate".
func ExtractNoticePeriod(text string) string {
	for _, pattern := range noticePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if immediateNotice.MatchString(text) {
		return "Immediate"
	}
	return ""
}

// ExtractExperience returns the "<number> year(s)" substring describing the
// candidate's total experience, or "". Among multiple matches, one
// grammatically near an experience keyword beats one that is not; within the
// same class the largest stated duration wins, ties broken by first
// occurrence. Durations above sixty years are ignored as noise.
func ExtractExperience(text string) string {
	matches := yearsPattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return ""
	}

	best := ""
	bestYears := -1.0
	bestKeyed := false
	for _, loc := range matches {
		candidate := strings.TrimSpace(text[loc[0]:loc[1]])
		years := leadingNumber(candidate)
		if years < 0 || years > 60 {
			continue
		}

		keyed := nearExperienceKeyword(text, loc[0], loc[1])

		switch {
		case keyed && !bestKeyed:
		case keyed == bestKeyed && years > bestYears:
		default:
			continue
		}
		best = candidate
		bestYears = years
		bestKeyed = keyed
	}
	return best
}

// ExtractSkills returns every dictionary entry found as a case-insensitive
// whole-word match in the text, in dictionary order, deduplicated.
func ExtractSkills(text string, dictionary []string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool, len(dictionary))
	for _, skill := range dictionary {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if containsWholeWord(lower, key) {
			found = append(found, skill)
			seen[key] = true
		}
	}
	return found
}

// Categorize assigns the job category whose keywords score highest against
// the text and the extracted skills. A keyword in the text counts one point;
// a keyword also present in the skill list counts two more. Ties are broken
// by the fixed category priority order; a zero score across all categories
// yields the catch-all.
func Categorize(text string, skills []string) core.JobCategory {
	lower := strings.ToLower(text)
	skillSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		skillSet[strings.ToLower(s)] = true
	}

	best := core.CategoryGeneral
	bestScore := 0
	for _, category := range core.CategoryPriority {
		keywords, ok := categoryKeywords[category]
		if !ok {
			continue
		}
		score := 0
		for _, kw := range keywords {
			if containsWholeWord(lower, kw) {
				score++
			}
			if skillSet[kw] {
				score += 2
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}
	return best
}

// nearExperienceKeyword reports whether an experience keyword appears close
// to the match within the same sentence. The window does not cross a period
// or newline, so a keyword belonging to a different statement does not
// promote an unrelated duration.
func nearExperienceKeyword(text string, start, end int) bool {
	right := end + 30
	if right > len(text) {
		right = len(text)
	}
	after := text[end:right]
	if i := strings.IndexAny(after, ".\n"); i >= 0 {
		after = after[:i]
	}
	if experienceKeyword.MatchString(after) {
		return true
	}

	left := start - 30
	if left < 0 {
		left = 0
	}
	before := text[left:start]
	if i := strings.LastIndexAny(before, ".\n"); i >= 0 {
		before = before[i+1:]
	}
	return experienceKeyword.MatchString(before)
}

// leadingNumber parses the numeric prefix of a years match, -1 on failure.
func leadingNumber(s string) float64 {
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return -1
	}
	return n
}

// containsWholeWord reports whether needle occurs in haystack with no
// letter, digit, or underscore immediately adjacent. Both arguments are
// expected to be lowercased. Needles may themselves contain punctuation
// ("c++", "node.js", "ci/cd").
func containsWholeWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if !wordChar(haystack, start-1) && !wordChar(haystack, end) {
			return true
		}
		from = start + 1
	}
}

func wordChar(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
