package gocert

import "strings"

// Organization identifies a template family.
type Organization int

const (
	OrganizationCSE Organization = iota
	OrganizationNIKA
)

// DefaultOrganization is used for identifiers that name no known organization.
const DefaultOrganization = OrganizationNIKA

// String returns the identifier used in certificate records.
func (o Organization) String() string {
	switch o {
	case OrganizationCSE:
		return "CSE"
	case OrganizationNIKA:
		return "NIKA"
	default:
		return "unknown"
	}
}

// ParseOrganization maps a record identifier to an Organization.
// Matching ignores case and surrounding whitespace.
func ParseOrganization(id string) (Organization, bool) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "CSE":
		return OrganizationCSE, true
	case "NIKA":
		return OrganizationNIKA, true
	}
	return DefaultOrganization, false
}

// profiles is the read-only style table. Coordinates are in pixels of the
// 300 dpi A4 templates (2480x3508).
var profiles = map[Organization]StyleProfile{
	OrganizationCSE: {
		Organization:    OrganizationCSE,
		CleanTemplate:   "template_cse_clean",
		StampedTemplate: "template_cse_stamp",
		TitleColor:      NewColor("B40000"),
		TextColor:       NewColor("000000"),
		MainFont:        "times",
		TitleFont:       "times",
		SecondaryFont:   "times",
		Name:            OneLineField{YCenter: 595, MaxWidth: 2200, MaxFontSize: 110, MinFontSize: 60},
		Title:           BlockField{YStart: 860, YEnd: 1225, MaxWidth: 2200, MaxFontSize: 120, MinFontSize: 40, Align: AlignCenter},
		Program:         BlockField{YStart: 1330, YEnd: 2685, MaxWidth: 2200, MaxFontSize: 60, MinFontSize: 25, Align: AlignLeft},
		Number:          SimpleField{X: 120, Y: 2980, FontSize: 50},
		Date:            SimpleField{X: 60, Y: 3100, FontSize: 50},
	},
	OrganizationNIKA: {
		Organization:    OrganizationNIKA,
		CleanTemplate:   "template_nika_clean",
		StampedTemplate: "template_nika_stamp",
		TitleColor:      NewColor("004099"),
		TextColor:       NewColor("323232"),
		MainFont:        "Montserrat-Bold",
		TitleFont:       "Montserrat-Bold",
		SecondaryFont:   "Roboto",
		Name:            OneLineField{YCenter: 452, MaxWidth: 2300, MaxFontSize: 125, MinFontSize: 60},
		Title:           BlockField{YStart: 750, YEnd: 1135, MaxWidth: 2300, MaxFontSize: 90, MinFontSize: 40, Align: AlignCenter},
		Program:         BlockField{YStart: 1250, YEnd: 2840, MaxWidth: 2300, MaxFontSize: 60, MinFontSize: 25, Align: AlignLeft},
		Number:          SimpleField{X: 120, Y: 2955, FontSize: 50},
		Date:            SimpleField{X: 200, Y: 3025, FontSize: 50},
	},
}

// Resolve returns the style profile for an organization identifier.
// Unknown identifiers resolve to DefaultProfile.
func Resolve(id string) StyleProfile {
	org, _ := ParseOrganization(id)
	return ProfileFor(org)
}

// ProfileFor returns the style profile of org, or DefaultProfile if org is
// not in the table.
func ProfileFor(org Organization) StyleProfile {
	if p, ok := profiles[org]; ok {
		return p
	}
	return DefaultProfile()
}

// DefaultProfile returns the fallback profile.
func DefaultProfile() StyleProfile {
	return profiles[DefaultOrganization]
}
