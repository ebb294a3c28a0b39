package order

// Source identifies the channel an order originated from. Unlike Status the
// set is open: third-party aggregators appear server-side before the client
// is updated, so Source keeps the raw tag and classification fails closed
// instead of erroring.
type Source string

// Known order sources. In-house channels are the cashier terminal and the
// table QR flow; the rest are third-party delivery aggregators.
const (
	SourceCashier    Source = "cashier"
	SourceTableQR    Source = "table_qr"
	SourceGrabFood   Source = "grabfood"
	SourceGoFood     Source = "gofood"
	SourceShopeeFood Source = "shopee_food"
)

// SourceDescriptor is the static display and behavior metadata for an order
// source. It is configuration, never mutated at runtime.
type SourceDescriptor struct {
	Label    string
	Color    string
	Glyph    string
	Delivery bool
}

// genericSourceColor is used for tags without their own branding.
const genericSourceColor = "#6B7280"

func sourceDescriptors() map[Source]SourceDescriptor {
	return map[Source]SourceDescriptor{
		SourceCashier:    {Label: "Cashier", Color: genericSourceColor, Glyph: "💳"},
		SourceTableQR:    {Label: "Table QR", Color: "#8B5CF6", Glyph: "📱"},
		SourceGrabFood:   {Label: "GrabFood", Color: "#00B14F", Glyph: "🟢", Delivery: true},
		SourceGoFood:     {Label: "GoFood", Color: "#D71920", Glyph: "🔴", Delivery: true},
		SourceShopeeFood: {Label: "Shopee", Color: "#EE4D2D", Glyph: "🧡", Delivery: true},
	}
}

// String returns the raw source tag.
func (s Source) String() string {
	return string(s)
}

// Describe returns the display metadata for the source. It is total over all
// tags: unrecognized sources get a descriptor labeled with the raw tag and
// the generic color, so new channels render before the client knows them.
func (s Source) Describe() SourceDescriptor {
	if desc, ok := sourceDescriptors()[s]; ok {
		return desc
	}
	return SourceDescriptor{Label: string(s), Color: genericSourceColor}
}

// IsDelivery reports whether the source is a third-party delivery channel.
// True exactly for grabfood, gofood and shopee_food; false for every other
// known or unknown tag. Delivery sources carry customer and driver metadata
// and are treated as order type delivery for filtering.
func (s Source) IsDelivery() bool {
	return s.Describe().Delivery
}

// IsKnown reports whether the tag is one of the enumerated sources.
func (s Source) IsKnown() bool {
	_, ok := sourceDescriptors()[s]
	return ok
}

// InitialStatus returns the status an order from this source is created
// with. Delivery-channel orders arrive Pending and must be accepted
// explicitly; in-house orders are confirmed at submission because the
// cashier placing them is the acceptance.
func (s Source) InitialStatus() Status {
	if s.IsDelivery() {
		return StatusPending
	}
	return StatusConfirmed
}

// KnownSources lists the enumerated source tags, in-house channels first.
// Used to build filter controls.
func KnownSources() []Source {
	return []Source{SourceCashier, SourceTableQR, SourceGrabFood, SourceGoFood, SourceShopeeFood}
}
