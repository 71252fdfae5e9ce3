package samples

import (
	"strconv"

	"go.dw1.io/x/regexbuilder/builder"
)

var (
	monthsEN = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthsFR = []string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "aout", "septembre", "octobre", "novembre", "décembre",
	}
)

// FullWrittenDateEN matches dates such as "March 3rd 2021" or "Sep. 21st
// 1999", with groups "month", "day" and "year".
func FullWrittenDateEN() *builder.Builder {
	month := builder.AlternativeGroup().SetName("month")
	for _, name := range monthsEN {
		abbr := builder.SequenceGroup().Unique(builder.Text(name[:3]))
		if rest := name[3:]; rest != "" {
			abbr.Optional(builder.AlternativeGroup(".", rest))
		} else {
			abbr.Optional(builder.Text("."))
		}
		month.Unique(abbr)
	}

	b := builder.New()
	b.Unique(month).
		Unique(builder.Class(builder.Space)).
		Unique(OrdinalDay().SetName("day")).
		Unique(builder.Class(builder.Space)).
		Unique(NumericYear().SetName("year"))

	return b
}

// FullWrittenDateFR matches dates such as "14 juillet 1789", with groups
// "day", "month" and an optional "year". At least one space must follow the
// month even when the year is absent.
func FullWrittenDateFR() *builder.Builder {
	b := builder.New()
	b.Unique(NumericDay().SetName("day")).
		Unique(builder.Class(builder.Space)).
		Unique(builder.AlternativeGroup(monthsFR...).SetName("month")).
		Some(builder.Class(builder.Space)).
		Optional(NumericYear().SetName("year"))

	return b
}

// OrdinalDay matches "1st" to "31st".
func OrdinalDay() *builder.Builder {
	b := builder.NewAlternative()
	for day := 1; day <= 31; day++ {
		b.Unique(builder.Text(strconv.Itoa(day), ordinalSuffix(day)))
	}

	return b
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// NumericDay matches 1 to 31, with an optional leading zero below 10.
func NumericDay() *builder.Builder {
	b := builder.NewAlternative()
	b.Unique(builder.SequenceGroup().
		Optional(builder.Text("0")).
		Unique(builder.Range('1', '9'))).
		Unique(builder.SequenceGroup().
			Unique(builder.Chars('1', '2')).
			Unique(builder.Class(builder.Numeric))).
		Unique(builder.Text("30")).
		Unique(builder.Text("31"))

	return b
}

// NumericMonth matches 1 to 12, with an optional leading zero below 10.
func NumericMonth() *builder.Builder {
	b := builder.NewAlternative()
	b.Unique(builder.SequenceGroup().
		Optional(builder.Text("0")).
		Unique(builder.Range('1', '9'))).
		Unique(builder.Text("10")).
		Unique(builder.Text("11")).
		Unique(builder.Text("12"))

	return b
}

// NumericYear matches four-digit years from 1000 to 2999.
func NumericYear() *builder.Builder {
	b := builder.New()
	b.Unique(builder.Chars('1', '2')).
		Exactly(builder.Class(builder.Numeric), 3)

	return b
}

// ClockHHMM matches a 24-hour time such as "09:45".
func ClockHHMM() *builder.Builder {
	b := builder.New()
	b.Unique(builder.AlternativeGroup().
		Unique(builder.SequenceGroup().
			Unique(builder.Chars('0', '1')).
			Unique(builder.Class(builder.Numeric))).
		Unique(builder.SequenceGroup().
			Unique(builder.Text("2")).
			Unique(builder.Range('0', '3')))).
		Unique(builder.Text(":")).
		Unique(builder.Range('0', '5')).
		Unique(builder.Class(builder.Numeric))

	return b
}

// RegularDate matches dd/mm/yyyy dates with groups "day", "month" and
// "year".
func RegularDate() *builder.Builder {
	b := builder.New()
	b.Unique(NumericDay().SetName("day")).
		Unique(builder.Text("/")).
		Unique(NumericMonth().SetName("month")).
		Unique(builder.Text("/")).
		Unique(NumericYear().SetName("year"))

	return b
}

// Timestamp matches ISO-8601 UTC timestamps such as
// "2024-01-02T03:04:05.678Z", with one group per field.
func Timestamp() *builder.Builder {
	field := func(name string, q builder.Quantifier) *builder.Group {
		return builder.SequenceGroup().SetName(name).Add(builder.Class(builder.Numeric), q)
	}

	b := builder.New()
	b.Unique(field("year", builder.Exactly(4))).
		Unique(builder.Text("-")).
		Unique(field("month", builder.Exactly(2))).
		Unique(builder.Text("-")).
		Unique(field("day", builder.Exactly(2))).
		Unique(builder.Text("T")).
		Unique(field("hour", builder.Exactly(2))).
		Unique(builder.Text(":")).
		Unique(field("minute", builder.Exactly(2))).
		Unique(builder.Text(":")).
		Unique(field("second", builder.Exactly(2))).
		Unique(builder.Text(".")).
		Unique(field("millisecond", builder.ZeroOrMore)).
		Unique(builder.Text("Z"))

	return b
}
