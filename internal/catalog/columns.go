package catalog

// Column names of the ingredient spreadsheet. Header cells are trimmed by
// the sheet reader before lookup; the names themselves are case-sensitive.
const (
	ColID       = "ID"
	ColName     = "Name"
	ColCategory = "Category"
	ColBrand    = "Brand"

	ColFromAmount   = "From Amount"
	ColFromUnit     = "From Unit"
	ColFromSingular = "From Unit Singular"
	ColFromPlural   = "From Unit Plural"

	ColToAmount   = "To Amount"
	ColToUnit     = "To Unit"
	ColToSingular = "To Unit Singular"
	ColToPlural   = "To Unit Plural"
)

// Columns lists the spreadsheet columns in their documented order.
func Columns() []string {
	return []string{
		ColID, ColName, ColCategory, ColBrand,
		ColFromAmount, ColFromUnit, ColFromSingular, ColFromPlural,
		ColToAmount, ColToUnit, ColToSingular, ColToPlural,
	}
}
