package pipeline

import (
	"errors"
	"testing"
	"time"

	"rostercheck/internal/config"
	"rostercheck/internal/model"
	"rostercheck/internal/parser"
	"rostercheck/internal/service/excel"
)

func fixedPipeline() *Pipeline {
	cfg := config.DefaultConfig().Validation
	cfg.BaseDate = "2025-12-31"
	return New(cfg, time.Now())
}

func testWorkbook() *excel.Workbook {
	order := []string{"재직자 명부", "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"}
	grids := map[string][][]string{
		"재직자 명부": {
			{"사원번호", "생년월일", "성별", "입사일자", "기준급여", "종업원구분"},
			{"0001", "19800510", "1", "2010-03-02", "3,000,000", "1"},
			{"", "19900101", "2", "2015-01-01", "2,500,000", "1"},
		},
		"퇴직자 및 DC전환자 명부": {
			{"사원번호", "생년월일", "입사일자", "퇴직일 또는 DC전환일", "퇴직금 또는 DC전환금"},
			{"0100", "19750115", "2020-01-01", "2019-01-01", "52,000,000"},
		},
		"추가 명부(장기근속)": {
			{"사원번호", "사유"},
			{"0001", "1"},
		},
	}
	return excel.FromGrids(order, grids)
}

func TestRun_EndToEnd(t *testing.T) {
	rep, err := fixedPipeline().Run(testWorkbook())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if rep.TotalRecords != 4 {
		t.Fatalf("total_records = %d, want 4", rep.TotalRecords)
	}
	// 오류 행: 재직자 3행(사원번호 누락), 퇴직자 2행(퇴직일 < 입사일)
	if rep.InvalidRecords != 2 || rep.ValidRecords != 2 {
		t.Fatalf("valid/invalid = %d/%d, errors=%v", rep.ValidRecords, rep.InvalidRecords, rep.Errors)
	}
	if rep.ValidRecords+rep.InvalidRecords != rep.TotalRecords {
		t.Fatal("valid + invalid must equal total")
	}

	types := make(map[string]int)
	for _, f := range rep.Errors {
		types[f.Type]++
	}
	if types[model.TypeRequiredFieldMissing] != 1 || types[model.TypeDateOrderInvalid] != 1 {
		t.Fatalf("error types = %v", types)
	}
	if len(rep.SummaryReport) == 0 {
		t.Fatal("summary report is empty")
	}
}

func TestRun_Idempotent(t *testing.T) {
	p := fixedPipeline()
	first, err := p.Run(testWorkbook())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := p.Run(testWorkbook())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(first.Errors) != len(second.Errors) || len(first.Warnings) != len(second.Warnings) {
		t.Fatalf("finding counts differ: %d/%d vs %d/%d",
			len(first.Errors), len(first.Warnings), len(second.Errors), len(second.Warnings))
	}
	for i := range first.Errors {
		if first.Errors[i] != second.Errors[i] {
			t.Fatalf("error %d differs: %+v vs %+v", i, first.Errors[i], second.Errors[i])
		}
	}
}

func TestRun_ExplicitNullRequiredSalary(t *testing.T) {
	// 기준급여 셀이 "-" 이면 정규화는 성공하지만 필수 필드 누락으로 본다
	wb := excel.FromGrids(
		[]string{"재직자 명부", "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"},
		map[string][][]string{
			"재직자 명부": {
				{"사원번호", "생년월일", "성별", "입사일자", "기준급여", "종업원구분"},
				{"0001", "19800510", "1", "2010-03-02", "-", "1"},
			},
			"퇴직자 및 DC전환자 명부": {
				{"사원번호", "생년월일", "입사일자", "퇴직일 또는 DC전환일", "퇴직금 또는 DC전환금"},
				{"0100", "19750115", "2005-04-01", "2025-06-30", "52,000,000"},
			},
			"추가 명부(장기근속)": {
				{"사원번호", "사유"},
				{"0001", "1"},
			},
		},
	)

	rep, err := fixedPipeline().Run(wb)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.InvalidRecords != 1 || rep.ValidRecords != 2 {
		t.Fatalf("valid/invalid = %d/%d, errors=%v", rep.ValidRecords, rep.InvalidRecords, rep.Errors)
	}
	if len(rep.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", rep.Errors)
	}
	f := rep.Errors[0]
	if f.Type != model.TypeRequiredFieldMissing || f.Column != "base_salary" || f.Row != 2 {
		t.Fatalf("finding = %+v", f)
	}
}

func TestRun_MissingRequiredSheet(t *testing.T) {
	wb := excel.FromGrids(
		[]string{"퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"},
		map[string][][]string{
			"퇴직자 및 DC전환자 명부": {{"사원번호"}},
			"추가 명부(장기근속)":    {{"사원번호", "사유"}},
		},
	)

	rep, err := fixedPipeline().Run(wb)
	if rep != nil {
		t.Fatal("structural failure must not produce a report")
	}
	var missing *parser.MissingRosterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *parser.MissingRosterError, got %v", err)
	}
	if missing.Kind != model.RosterActive {
		t.Fatalf("missing kind = %s", missing.Kind)
	}
}

func TestRun_OptionalLongTermSheet(t *testing.T) {
	// 기타장기 명부가 없으면 0건 기여, 있으면 레코드 수에 더해진다
	rep, err := fixedPipeline().Run(testWorkbook())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	without := rep.TotalRecords

	order := []string{"재직자 명부", "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)", "기타장기 재직자 명부"}
	grids := map[string][][]string{
		"재직자 명부":          testWorkbook().Rows("재직자 명부"),
		"퇴직자 및 DC전환자 명부": testWorkbook().Rows("퇴직자 및 DC전환자 명부"),
		"추가 명부(장기근속)":    testWorkbook().Rows("추가 명부(장기근속)"),
		"기타장기 재직자 명부": {
			{"사원번호", "기준급여"},
			{"0001", "3,000,000"},
			{"0002", "2,800,000"},
		},
	}
	rep2, err := fixedPipeline().Run(excel.FromGrids(order, grids))
	if err != nil {
		t.Fatalf("Run with long-term sheet: %v", err)
	}
	if rep2.TotalRecords != without+2 {
		t.Fatalf("total = %d, want %d", rep2.TotalRecords, without+2)
	}
}

func TestRun_DuplicateSheetWarningIncluded(t *testing.T) {
	wb := testWorkbook()
	order := append(wb.SheetNames(), "재직자 명부(사본)")
	grids := map[string][][]string{
		"재직자 명부":          wb.Rows("재직자 명부"),
		"퇴직자 및 DC전환자 명부": wb.Rows("퇴직자 및 DC전환자 명부"),
		"추가 명부(장기근속)":    wb.Rows("추가 명부(장기근속)"),
		"재직자 명부(사본)":     {{"사원번호"}},
	}

	rep, err := fixedPipeline().Run(excel.FromGrids(order, grids))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	found := false
	for _, w := range rep.Warnings {
		if w.Type == model.TypeDuplicateSheetMatch && w.Sheet == "재직자 명부(사본)" && w.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("duplicate sheet warning missing: %v", rep.Warnings)
	}
	// 중복 시트는 레코드 수에 기여하지 않는다
	if rep.TotalRecords != 4 {
		t.Fatalf("total = %d, want 4", rep.TotalRecords)
	}
}

func TestBaseDateOverride(t *testing.T) {
	cfg := config.DefaultConfig().Validation
	cfg.BaseDate = "2024-06-30"
	p := New(cfg, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if got := p.BaseDate().Format("2006-01-02"); got != "2024-06-30" {
		t.Fatalf("base date = %s", got)
	}

	cfg.BaseDate = ""
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := New(cfg, now).BaseDate(); !got.Equal(now) {
		t.Fatalf("base date = %v, want now", got)
	}
}

func TestPreview(t *testing.T) {
	counts, err := fixedPipeline().Preview(testWorkbook())
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("sheet counts = %d, want 3", len(counts))
	}
	if counts[0].Kind != model.RosterActive || counts[0].Records != 2 {
		t.Fatalf("active preview = %+v", counts[0])
	}
	if counts[1].Kind != model.RosterRetired || counts[1].Records != 1 {
		t.Fatalf("retired preview = %+v", counts[1])
	}
}
