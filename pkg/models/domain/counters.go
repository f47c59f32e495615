package domain

// InputCounters are the operator-entered figures for one reporting day.
type InputCounters struct {
	FansCount         int // new fans acquired
	AccountCount      int // acquisition accounts operated
	GroupMembers      int // staff operating the funnel
	ConversionMembers int // conversion staff, recorded only
	ChannelCount      int // acquisition channels
	RegisterCount     int // users who registered
	PayCount          int // users who paid
	ValueCount        int // high-value converted users
}

// CounterField names a counter the way it appears on the wire and in profiles.
type CounterField string

const (
	FieldFansCount         CounterField = "fans_count"
	FieldAccountCount      CounterField = "account_count"
	FieldGroupMembers      CounterField = "group_members"
	FieldConversionMembers CounterField = "conversion_members"
	FieldChannelCount      CounterField = "channel_count"
	FieldRegisterCount     CounterField = "register_count"
	FieldPayCount          CounterField = "pay_count"
	FieldValueCount        CounterField = "value_count"
)

// CounterFields lists every counter in display order.
var CounterFields = []CounterField{
	FieldFansCount,
	FieldAccountCount,
	FieldGroupMembers,
	FieldConversionMembers,
	FieldChannelCount,
	FieldRegisterCount,
	FieldPayCount,
	FieldValueCount,
}

// Ref returns a pointer to the counter named by field, or nil for unknown names.
func (c *InputCounters) Ref(field CounterField) *int {
	switch field {
	case FieldFansCount:
		return &c.FansCount
	case FieldAccountCount:
		return &c.AccountCount
	case FieldGroupMembers:
		return &c.GroupMembers
	case FieldConversionMembers:
		return &c.ConversionMembers
	case FieldChannelCount:
		return &c.ChannelCount
	case FieldRegisterCount:
		return &c.RegisterCount
	case FieldPayCount:
		return &c.PayCount
	case FieldValueCount:
		return &c.ValueCount
	}
	return nil
}

// Get returns the value of the counter named by field.
func (c InputCounters) Get(field CounterField) int {
	if p := c.Ref(field); p != nil {
		return *p
	}
	return 0
}

// Validate checks the counters can be fed to the calculator.
func (c InputCounters) Validate() error {
	if c.FansCount <= 0 {
		return &FieldError{Field: FieldFansCount, Reason: "must be greater than 0"}
	}
	for _, f := range CounterFields {
		if c.Get(f) < 0 {
			return &FieldError{Field: f, Reason: "must not be negative"}
		}
	}
	return nil
}
