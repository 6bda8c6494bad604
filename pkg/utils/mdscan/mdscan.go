// Package mdscan extracts structured signals from free-form markdown text:
// the declared submission stage and referenced GitHub repositories. It is
// pattern matching, not markdown or URL parsing; malformed URLs that happen
// to match the pattern are accepted unchanged.
package mdscan

import (
	"regexp"
	"strings"

	"github.com/dd2482/submitcheck/pkg/domain/model"
)

var (
	// A markdown heading line declaring the stage, e.g. "# Final submission"
	stageHeading = regexp.MustCompile(`(?im)^#.*\b(final|proposal)\b.*$`)

	// https://github.com/<owner>/<repo>, with optional www
	repoURL = regexp.MustCompile(`https://(?:www\.)?github\.com/([^/\s]+)/([\w\-]+)`)
)

// ExtractStage scans text for a markdown heading containing "final" or
// "proposal" (case-insensitive). The first heading in document order wins;
// later conflicting headings are ignored. Returns StageUnknown when no such
// heading exists.
func ExtractStage(text string) model.Stage {
	heading := stageHeading.FindString(text)
	if heading == "" {
		return model.StageUnknown
	}

	if strings.Contains(strings.ToLower(heading), "final") {
		return model.StageFinalSubmission
	}
	return model.StageProposal
}

// ExtractRepoRefs collects all GitHub repository URLs in text, drops
// references owned by excludeOwner (case-insensitive, they point at the
// course repository rather than a student project), and de-duplicates on the
// (owner, name) pair. Order of the result is unspecified.
func ExtractRepoRefs(text string, excludeOwner string) []model.RepoReference {
	matches := repoURL.FindAllStringSubmatch(text, -1)

	seen := map[model.RepoReference]struct{}{}
	var refs []model.RepoReference
	for _, m := range matches {
		ref := model.RepoReference{Owner: m[1], Name: m[2]}
		if strings.EqualFold(ref.Owner, excludeOwner) {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	return refs
}
