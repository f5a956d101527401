package gocert

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// DateLayout is the display format of seminar dates.
const DateLayout = "02.01.2006"

// DefaultNumberPrefixes are stripped from display numbers before painting:
// the numero sign and its UTF-8 bytes misread as Windows-1252, which older
// records carry.
var DefaultNumberPrefixes = []string{"№", "â„–"}

// CertificateRequest carries the record fields of one certificate.
type CertificateRequest struct {
	Organization string     `yaml:"organization"`
	FullName     string     `yaml:"full_name"`
	Title        string     `yaml:"title"`
	Program      string     `yaml:"program"`
	DateStart    time.Time  `yaml:"date_start"`
	DateEnd      *time.Time `yaml:"date_end,omitempty"`
	Number       string     `yaml:"number"`
}

// DateText formats the seminar dates, as "DD.MM.YYYY" or
// "DD.MM.YYYY - DD.MM.YYYY" when an end date is set.
func (r CertificateRequest) DateText() string {
	if r.DateStart.IsZero() {
		return ""
	}
	s := r.DateStart.Format(DateLayout)
	if r.DateEnd != nil && !r.DateEnd.IsZero() {
		s += " - " + r.DateEnd.Format(DateLayout)
	}
	return s
}

// StripNumberPrefix removes the first matching prefix from number and trims
// surrounding whitespace.
func StripNumberPrefix(number string, prefixes []string) string {
	s := strings.TrimSpace(number)
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			break
		}
	}
	return strings.TrimSpace(s)
}

// fieldTexts returns the text painted for each field, NFC-normalized.
func (r CertificateRequest) fieldTexts(prefixes []string) map[Field]string {
	return map[Field]string{
		FieldName:    norm.NFC.String(strings.TrimSpace(r.FullName)),
		FieldTitle:   norm.NFC.String(strings.TrimSpace(r.Title)),
		FieldProgram: norm.NFC.String(r.Program),
		FieldNumber:  norm.NFC.String(StripNumberPrefix(r.Number, prefixes)),
		FieldDate:    r.DateText(),
	}
}
