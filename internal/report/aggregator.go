package report

import (
	"fmt"
	"sort"
	"strings"

	"rostercheck/internal/model"
)

// AllClearLine 지적 사항이 없을 때의 요약 한 줄
const AllClearLine = "모든 데이터가 정상입니다. 별도의 확인 사항이 없습니다."

// Build 검증 지적 스트림을 최종 리포트로 집계
// 오류/경고로 분리하고 (시트, 행, 컬럼) 기준 안정 정렬한다.
// invalid_records 는 오류가 1건 이상인 (시트, 행)의 개수다 (행당 1회).
func Build(findings []model.Finding, totalRecords, maxMessages int) *model.ValidationReport {
	errors := make([]model.Finding, 0)
	warnings := make([]model.Finding, 0)
	for _, f := range findings {
		if f.Severity == model.SeverityError {
			errors = append(errors, f)
		} else {
			warnings = append(warnings, f)
		}
	}

	sortFindings(errors)
	sortFindings(warnings)

	invalidRows := make(map[string]bool)
	for _, f := range errors {
		if f.Row > 0 {
			invalidRows[fmt.Sprintf("%s#%d", f.Sheet, f.Row)] = true
		}
	}

	return &model.ValidationReport{
		TotalRecords:   totalRecords,
		ValidRecords:   totalRecords - len(invalidRows),
		InvalidRecords: len(invalidRows),
		Errors:         errors,
		Warnings:       warnings,
		SummaryReport:  summarize(errors, warnings, maxMessages),
	}
}

func sortFindings(fs []model.Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Sheet != fs[j].Sheet {
			return fs[i].Sheet < fs[j].Sheet
		}
		if fs[i].Row != fs[j].Row {
			return fs[i].Row < fs[j].Row
		}
		return fs[i].Column < fs[j].Column
	})
}

// summarize 시트별 요약 라인 생성
// 시트당 (시트, 메시지) 중복 없이 최대 maxMessages 건만 보여준다.
// 지적이 없는 시트는 라인을 만들지 않는다.
func summarize(errors, warnings []model.Finding, maxMessages int) []string {
	if maxMessages <= 0 {
		maxMessages = 3
	}

	type sheetIssues struct {
		name     string
		messages []string
		seen     map[string]bool
	}

	var order []string
	bySheet := make(map[string]*sheetIssues)

	collect := func(fs []model.Finding) {
		for _, f := range fs {
			si, ok := bySheet[f.Sheet]
			if !ok {
				si = &sheetIssues{name: f.Sheet, seen: make(map[string]bool)}
				bySheet[f.Sheet] = si
				order = append(order, f.Sheet)
			}
			if si.seen[f.Message] {
				continue
			}
			si.seen[f.Message] = true
			si.messages = append(si.messages, f.Message)
		}
	}
	// 오류 메시지를 경고보다 먼저 모은다
	collect(errors)
	collect(warnings)

	if len(order) == 0 {
		return []string{AllClearLine}
	}

	lines := make([]string, 0, len(order))
	for _, sheet := range order {
		si := bySheet[sheet]
		shown := si.messages
		extra := 0
		if len(shown) > maxMessages {
			extra = len(shown) - maxMessages
			shown = shown[:maxMessages]
		}
		summary := strings.Join(shown, ", ")
		if extra > 0 {
			summary += fmt.Sprintf(" 외 %d건", extra)
		}
		lines = append(lines, fmt.Sprintf("'%s' 시트에서 [%s] 등을 확인해 주세요.", sheet, summary))
	}
	return lines
}
