// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/drivematch/pkg/types"
)

var (
	showAllRe  = regexp.MustCompile(`show\s+(?:me\s+)?all\b|see\s+all\b|all\s+of\s+them`)
	showNMore  = regexp.MustCompile(`show\s+(?:me\s+)?([0-9]+)\s+more`)
	showMoreRe = regexp.MustCompile(`show\s+(?:me\s+)?more|see\s+more|more\s+(?:options|results|cars|choices)`)
)

// ResultCount decides how many results to surface from the latest user
// message. It is a stateless detector returning an explicit count, not
// cumulative pagination state: "show more" always means the fixed larger
// size, and "show N more" means the base count plus N.
func ResultCount(lastUserMessage string, cfg types.SelectionConfig) int {
	text := strings.ToLower(lastUserMessage)

	if showAllRe.MatchString(text) {
		return cfg.AllResultCount
	}
	if m := showNMore.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return cfg.BaseResultCount + n
		}
	}
	if showMoreRe.MatchString(text) {
		return cfg.MoreResultCount
	}
	return cfg.BaseResultCount
}
