package samples

import "go.dw1.io/x/regexbuilder/builder"

// Email matches common e-mail addresses.
func Email() *builder.Builder {
	accepted := builder.Class(builder.Alphanumeric).WithChars('%', '_', '-', '+')

	b := builder.New()
	b.Some(accepted).
		Optional(builder.SequenceGroup().
			Unique(builder.Text(".")).
			Some(accepted)).
		Unique(builder.Text("@")).
		Some(builder.SequenceGroup().
			Some(accepted).
			Unique(builder.Text("."))).
		Between(builder.Class(builder.Alphabetic), 2, 10)

	return b
}

// HTMLEntity matches named and numeric character references such as
// "&amp;", "&#169;" or "&#x1F600;", including doubly escaped "&amp;amp;".
func HTMLEntity() *builder.Builder {
	b := builder.New()
	b.Unique(builder.Text("&")).
		Any(builder.Text("amp;")).
		Unique(builder.AlternativeGroup().
			Some(builder.Class(builder.Alphanumeric)).
			Unique(builder.SequenceGroup().
				Unique(builder.Text("#")).
				Between(builder.Class(builder.Numeric), 1, 6)).
			Unique(builder.SequenceGroup().
				Unique(builder.Text("#x")).
				Between(builder.Class(builder.Hexadecimal), 1, 6))).
		Unique(builder.Text(";"))

	return b
}
