package parser

import (
	"errors"
	"testing"

	"rostercheck/internal/model"
)

func TestResolveWorkbook_FuzzyActiveNames(t *testing.T) {
	// 재직자 명부의 다양한 표기가 모두 같은 종류로 해석되어야 한다
	variants := []string{"재직자명부", "(2-2)재직자 명부", "2-2 재직자-명부"}

	for _, name := range variants {
		sheets := []string{name, "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"}
		res, err := ResolveWorkbook(sheets)
		if err != nil {
			t.Fatalf("ResolveWorkbook(%q): %v", name, err)
		}
		if got := res.Sheets[model.RosterActive]; got != name {
			t.Fatalf("active sheet = %q, want %q", got, name)
		}
	}
}

func TestResolveWorkbook_MissingRequiredSheet(t *testing.T) {
	// 재직자 명부가 없으면 구조적 실패 (검증 리포트가 아님)
	sheets := []string{"기타", "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"}

	_, err := ResolveWorkbook(sheets)
	if err == nil {
		t.Fatal("expected structural failure")
	}
	var missing *MissingRosterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingRosterError, got %T", err)
	}
	if missing.Kind != model.RosterActive {
		t.Fatalf("missing kind = %s, want %s", missing.Kind, model.RosterActive)
	}
}

func TestResolveWorkbook_LongTermOptional(t *testing.T) {
	sheets := []string{"재직자 명부", "퇴직자 및 DC전환자 명부", "추가 명부(장기근속)"}

	res, err := ResolveWorkbook(sheets)
	if err != nil {
		t.Fatalf("ResolveWorkbook: %v", err)
	}
	if _, ok := res.Sheets[model.RosterLongTermActive]; ok {
		t.Fatal("long-term roster should be absent, not defaulted")
	}
}

func TestResolveWorkbook_LongTermNotMistakenForActive(t *testing.T) {
	// "기타장기 재직자 명부"는 재직자 키워드를 포함하지만 재직자 명부가 아니다
	sheets := []string{
		"기타장기 재직자 명부",
		"재직자 명부",
		"퇴직자 및 DC전환자 명부",
		"추가 명부(장기근속)",
	}

	res, err := ResolveWorkbook(sheets)
	if err != nil {
		t.Fatalf("ResolveWorkbook: %v", err)
	}
	if got := res.Sheets[model.RosterActive]; got != "재직자 명부" {
		t.Fatalf("active sheet = %q, want 재직자 명부", got)
	}
	if got := res.Sheets[model.RosterLongTermActive]; got != "기타장기 재직자 명부" {
		t.Fatalf("long-term sheet = %q", got)
	}
}

func TestResolveWorkbook_DuplicateMatchWarns(t *testing.T) {
	sheets := []string{
		"재직자 명부",
		"재직자 명부(수정본)",
		"퇴직자 및 DC전환자 명부",
		"추가 명부(장기근속)",
	}

	res, err := ResolveWorkbook(sheets)
	if err != nil {
		t.Fatalf("ResolveWorkbook: %v", err)
	}
	// 첫 시트가 이긴다
	if got := res.Sheets[model.RosterActive]; got != "재직자 명부" {
		t.Fatalf("active sheet = %q, want first occurrence", got)
	}
	if len(res.Duplicates) != 1 {
		t.Fatalf("duplicates = %d, want 1", len(res.Duplicates))
	}
	d := res.Duplicates[0]
	if d.Type != model.TypeDuplicateSheetMatch || d.Severity != model.SeverityWarning {
		t.Fatalf("duplicate finding = %+v", d)
	}
	if d.Sheet != "재직자 명부(수정본)" || d.Row != 0 {
		t.Fatalf("duplicate anchored at %q row %d", d.Sheet, d.Row)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"(2-2)재직자 명부": "22재직자명부",
		"퇴직자 및 DC전환자 명부": "퇴직자및dc전환자명부",
		"  기타 ": "기타",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
