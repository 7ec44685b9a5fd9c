package flagcomp

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/napalu/flagcomp/types"
	"github.com/napalu/flagcomp/types/queue"
	"go.uber.org/zap"
)

// planGroups selects the groups to display, most relevant first. The perfect match is
// always shown; the other groups are added while the running size stays under budget.
func (e *Engine) planGroups(matches []types.Flag, buckets relevanceBuckets, budget int) *queue.Q[displayGroup] {
	plan := queue.New[displayGroup]()
	linesSoFar := 0
	add := func(g displayGroup) {
		plan.Enqueue(g)
		linesSoFar += g.sizeInLines()
	}

	if len(buckets.perfectMatch) > 0 {
		add(displayGroup{footer: perfectMatchFooter, flags: buckets.perfectMatch})
	}

	for _, candidate := range []struct {
		key   string
		flags []types.Flag
	}{
		{types.GroupModuleKey, buckets.module},
		{types.GroupPackageKey, buckets.pkg},
		{types.GroupCommonKey, buckets.mostCommon},
		{types.GroupSubpackageKey, buckets.subpackage},
	} {
		if linesSoFar >= budget || len(candidate.flags) == 0 {
			continue
		}
		header := e.translate(candidate.key)
		add(displayGroup{
			header: header,
			footer: strings.Repeat("=", runewidth.StringWidth(header)),
			flags:  candidate.flags,
		})
	}

	if linesSoFar < budget {
		if others := buckets.unplaced(matches); len(others) > 0 {
			add(displayGroup{header: e.translate(types.GroupOtherKey), flags: others})
		}
	}

	e.logger.Debug("planned completion groups",
		zap.Int("groups", plan.Len()),
		zap.Int("planned_lines", linesSoFar),
		zap.Int("budget", budget))

	return plan
}

// finalizeCompletionOutput renders the planned groups within the line budget. Groups are
// indented one space less than the group before them, the last one not at all, which
// keeps every group together when the shell sorts the lines.
func (e *Engine) finalizeCompletionOutput(matches []types.Flag, buckets relevanceBuckets, mods *searchModifiers) []string {
	budget := e.lineBudget
	if mods.returnAll {
		budget = unboundedLineBudget
	}

	plan := e.planGroups(matches, buckets, budget)
	groupCount := plan.Len()
	longFormat := len(buckets.perfectMatch) > 0
	remaining := budget
	emitted := 0

	var lines []string
	plan.Drain(func(g displayGroup, i int) bool {
		indent := strings.Repeat(" ", groupCount-1-i)
		if g.header != "" {
			if remaining < 2 {
				return true
			}
			remaining -= 2
			lines = append(lines,
				indent+g.header,
				indent+strings.Repeat("-", runewidth.StringWidth(g.header)))
		}

		for _, f := range sortedByName(g.flags) {
			if remaining <= 0 {
				break
			}
			remaining--
			emitted++
			if longFormat && i == 0 {
				lines = append(lines, e.longFlagLine(indent, f))
			} else {
				lines = append(lines, e.shortFlagLine(indent, f))
			}
		}

		if g.footer != "" && remaining >= 1 {
			remaining--
			lines = append(lines, indent+g.footer)
		}

		return true
	})

	if emitted == len(matches) {
		mods.suppressAutoUpdate = true
	} else {
		mods.suppressAutoUpdate = false
		lines = append(lines, e.translate(types.MsgRemainingHiddenKey))
	}

	e.logger.Debug("composed completion output",
		zap.Int("matches", len(matches)),
		zap.Int("listed", emitted),
		zap.Int("lines", len(lines)))

	return lines
}

func sortedByName(flags []types.Flag) []types.Flag {
	sorted := slices.Clone(flags)
	slices.SortFunc(sorted, func(a, b types.Flag) int {
		return strings.Compare(a.Name, b.Name)
	})

	return sorted
}
