package markup

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// ReplaceTag rewrites open and close tags of one name to another, keeping
// any attributes on the open tag.
func ReplaceTag(s, from, to string) string {
	s = strings.ReplaceAll(s, "<"+from+">", "<"+to+">")
	s = strings.ReplaceAll(s, "<"+from+" ", "<"+to+" ")
	s = strings.ReplaceAll(s, "<"+from+"/>", "<"+to+"/>")
	s = strings.ReplaceAll(s, "</"+from+">", "</"+to+">")
	return s
}

var tagPatternCache sync.Map // tag name -> *regexp.Regexp

// RemoveTag strips open and close tags of the given name, keeping the tag
// content. A trailing colon removes every tag with that namespace prefix.
func RemoveTag(s, tag string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	re, ok := tagPatternCache.Load(tag)
	if !ok {
		quoted := regexp.QuoteMeta(strings.TrimSuffix(tag, ":"))
		expr := fmt.Sprintf(`(?s)</?%s(\s[^<>]*?)?/?>`, quoted)
		if strings.HasSuffix(tag, ":") {
			expr = fmt.Sprintf(`(?s)</?%s:[^<>]*?>`, quoted)
		}
		re = regexp.MustCompile(expr)
		tagPatternCache.Store(tag, re)
	}
	return re.(*regexp.Regexp).ReplaceAllString(s, "")
}

// CleanTags removes all recognized inline tags from the fragment, keeping
// their content. Tag names listed in keep are preserved.
func CleanTags(s string, keep ...string) string {
	for _, tag := range allowedTags {
		if kept(tag, keep) {
			continue
		}
		s = RemoveTag(s, tag)
	}
	return s
}

func kept(tag string, keep []string) bool {
	for _, k := range keep {
		if k == tag {
			return true
		}
	}
	return false
}

// faceMarkup maps source inline tags to the destination face markup
// vocabulary used inside titles, subtitles and unstructured citations.
var faceMarkup = [][2]string{
	{"italic", "i"},
	{"bold", "b"},
	{"underline", "u"},
	{"sc", "scp"},
}

// ConvertFaceMarkup remaps inline tags to their destination equivalents and
// strips the tags that have none, keeping their text content.
func ConvertFaceMarkup(s string) string {
	for _, pair := range faceMarkup {
		s = ReplaceTag(s, pair[0], pair[1])
	}
	s = RemoveTag(s, "inline-formula")
	s = RemoveTag(s, "ext-link")
	s = RemoveTag(s, "p")
	return s
}
