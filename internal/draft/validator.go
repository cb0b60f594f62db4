package draft

import "regexp"

// Character sets allowed in free-text fields. Anything outside them is
// rejected before the draft goes anywhere near the network.
var (
	titlePattern       = regexp.MustCompile(`^[-()., A-Za-z0-9\n]*$`)
	descriptionPattern = regexp.MustCompile(`^[-().,_ A-Za-z0-9@': \n]*$`)
)

// User-facing validation messages, one per failure mode.
const (
	MsgSpecialChars        = "Special characters are not allowed."
	MsgTitleRequired       = "Complaint/Request title is required"
	MsgDescriptionRequired = "Complaint/Request description is required"
	MsgSelectCategory      = "Select category"
	MsgSelectDepartment    = "Select department"
	MsgSelectType          = "Select type"
	MsgAssignResolver      = "Assign to resolver"
)

type fieldRule struct {
	field string
	check func(*Draft) string
}

// Rules are evaluated in declaration order; the first failing message per
// field is surfaced, keyed by field name.
var rules = []fieldRule{
	{FieldTitle, func(d *Draft) string {
		return textRule(d.Title, titlePattern, MsgTitleRequired)
	}},
	{FieldDescription, func(d *Draft) string {
		return textRule(d.Description, descriptionPattern, MsgDescriptionRequired)
	}},
	{FieldCategory, requiredRule(func(d *Draft) string { return d.CategoryID }, MsgSelectCategory)},
	{FieldDepartment, requiredRule(func(d *Draft) string { return d.DepartmentID }, MsgSelectDepartment)},
	{FieldTicketType, requiredRule(func(d *Draft) string { return d.TicketType }, MsgSelectType)},
	{FieldResolver, requiredRule(func(d *Draft) string { return d.ResolverID }, MsgAssignResolver)},
}

// Validate evaluates every field rule against the draft and returns the
// failing messages keyed by field name. An empty map means the draft is
// submittable.
func (d *Draft) Validate() map[string]string {
	errs := map[string]string{}
	for _, rule := range rules {
		if msg := rule.check(d); msg != "" {
			errs[rule.field] = msg
		}
	}
	return errs
}

func textRule(value string, pattern *regexp.Regexp, requiredMsg string) string {
	if value == "" {
		return requiredMsg
	}
	if !pattern.MatchString(value) {
		return MsgSpecialChars
	}
	return ""
}

func requiredRule(get func(*Draft) string, msg string) func(*Draft) string {
	return func(d *Draft) string {
		if get(d) == "" {
			return msg
		}
		return ""
	}
}
