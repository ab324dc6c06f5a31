package parser

import "testing"

func TestToISODate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"19800101", "1980-01-01", true},
		{"2020-06-15", "2020-06-15", true},
		{"19800101.0", "1980-01-01", true},
		{"2020-06-15 00:00:00", "2020-06-15", true},
		{"800101", "1980-01-01", true}, // YYMMDD, 50 초과는 19xx
		{"210315", "2021-03-15", true},
		{"19801301", "", false}, // 13월
		{"19800132", "", false}, // 32일
		{"2020-13-01", "", false},
		{"2020-01-32", "", false},
		{"20200230", "", false}, // 2월 30일
		{"abc", "", false},
		{"", "", false},
		{"1980", "", false},
	}

	for _, tc := range cases {
		got, ok := ToISODate(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ToISODate(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestToNumber(t *testing.T) {
	v, ok := ToNumber("47,270,000")
	if !ok || v == nil || *v != 47270000 {
		t.Fatalf("ToNumber with thousands separators failed: v=%v ok=%v", v, ok)
	}

	// "-" 단독은 명시적 null 이지 실패가 아니다
	v, ok = ToNumber("-")
	if !ok || v != nil {
		t.Fatalf("ToNumber(\"-\") = (%v, %v), want (nil, true)", v, ok)
	}

	v, ok = ToNumber("   ")
	if !ok || v != nil {
		t.Fatalf("ToNumber(blank) = (%v, %v), want (nil, true)", v, ok)
	}

	v, ok = ToNumber("-1500")
	if !ok || v == nil || *v != -1500 {
		t.Fatalf("ToNumber(-1500) = (%v, %v), want (-1500, true)", v, ok)
	}

	if _, ok := ToNumber("천만원"); ok {
		t.Fatal("ToNumber should fail on non-numeric text")
	}
}

func TestToEmpID(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"725", "0725"},
		{"120009001", "120009001"}, // 긴 번호는 자르지 않는다
		{"2120.0", "2120"},
		{"12", "0012"},
		{"A17", "A17"}, // 숫자 아닌 번호는 패딩하지 않는다
		{"", ""},
		{"  0042  ", "0042"},
	}

	for _, tc := range cases {
		if got := ToEmpID(tc.raw); got != tc.want {
			t.Fatalf("ToEmpID(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestToCode(t *testing.T) {
	gender := []int{1, 2}

	code, numeric, ok := ToCode("2", gender)
	if !ok || !numeric || code == nil || *code != 2 {
		t.Fatalf("ToCode(2) = (%v, %v, %v)", code, numeric, ok)
	}

	// 엑셀이 숫자를 소수 표기로 내보낸 경우
	code, _, ok = ToCode("1.0", gender)
	if !ok || code == nil || *code != 1 {
		t.Fatalf("ToCode(1.0) = (%v, %v)", code, ok)
	}

	// 허용 외 코드: 숫자이긴 하다
	code, numeric, ok = ToCode("3", gender)
	if ok || !numeric || code != nil {
		t.Fatalf("ToCode(3, gender) = (%v, %v, %v), want out-of-set", code, numeric, ok)
	}

	// 숫자 아님
	_, numeric, ok = ToCode("남", gender)
	if ok || numeric {
		t.Fatalf("ToCode(남) should be non-numeric failure")
	}
}
