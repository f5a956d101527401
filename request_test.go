package gocert

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateText(t *testing.T) {
	end := date(2024, time.January, 12)
	tests := []struct {
		name string
		req  CertificateRequest
		want string
	}{
		{"single day", CertificateRequest{DateStart: date(2024, time.January, 1)}, "01.01.2024"},
		{"range", CertificateRequest{DateStart: date(2024, time.January, 10), DateEnd: &end}, "10.01.2024 - 12.01.2024"},
		{"zero end", CertificateRequest{DateStart: date(2024, time.March, 5), DateEnd: &time.Time{}}, "05.03.2024"},
		{"no start", CertificateRequest{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.DateText(); got != tt.want {
				t.Errorf("DateText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripNumberPrefix(t *testing.T) {
	tests := []struct {
		in       string
		prefixes []string
		want     string
	}{
		{"№ 01-01012024", DefaultNumberPrefixes, "01-01012024"},
		{"№01-01012024", DefaultNumberPrefixes, "01-01012024"},
		{"â„– 07-15032024", DefaultNumberPrefixes, "07-15032024"},
		{"  01-01012024 ", DefaultNumberPrefixes, "01-01012024"},
		{"No. 5", []string{"No."}, "5"},
		{"№ 5", nil, "№ 5"},
		{"5 №", DefaultNumberPrefixes, "5 №"},
	}
	for _, tt := range tests {
		if got := StripNumberPrefix(tt.in, tt.prefixes); got != tt.want {
			t.Errorf("StripNumberPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldTexts(t *testing.T) {
	req := CertificateRequest{
		// "й" given as "и" + combining breve.
		FullName:  "  Андре\u0438\u0306 Петров ",
		Title:     "Охрана труда",
		Program:   "Раздел 1\r\nРаздел 2",
		DateStart: date(2024, time.January, 1),
		Number:    "№ 01-01012024",
	}
	texts := req.fieldTexts(DefaultNumberPrefixes)

	want := map[Field]string{
		FieldName:    "Андрей Петров",
		FieldTitle:   "Охрана труда",
		FieldProgram: "Раздел 1\r\nРаздел 2",
		FieldNumber:  "01-01012024",
		FieldDate:    "01.01.2024",
	}
	for f, w := range want {
		if texts[f] != w {
			t.Errorf("%v = %q, want %q", f, texts[f], w)
		}
	}
}
