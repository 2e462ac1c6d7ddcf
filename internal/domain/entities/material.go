package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMaterialQuantity       = errors.New("quantity must be greater than 0")
	ErrMaterialSourceMissing  = errors.New("select a material from the catalog or cables/accessories")
	ErrMaterialSourceConflict = errors.New("select only one: catalog or cable/accessory")
)

// MaterialSourceKind tags the two catalogs a material line can come from.
type MaterialSourceKind string

const (
	MaterialSourceCatalog MaterialSourceKind = "catalog"
	MaterialSourceCable   MaterialSourceKind = "cable"
)

func (k MaterialSourceKind) Valid() bool {
	return k == MaterialSourceCatalog || k == MaterialSourceCable
}

// MaterialSource is the display side of a material line. It is either a CatalogMaterial
// or a CableMaterial; the two never coexist on the same line.
type MaterialSource interface {
	Kind() MaterialSourceKind
	ItemID() int64
	Label() string
	UnitPrice() string
	isMaterialSource()
}

// CatalogMaterial carries the catalog fields the backend joins into a material line.
type CatalogMaterial struct {
	CatalogID   int64  `json:"catalog_id"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
}

func (CatalogMaterial) Kind() MaterialSourceKind { return MaterialSourceCatalog }
func (c CatalogMaterial) ItemID() int64          { return c.CatalogID }
func (c CatalogMaterial) UnitPrice() string      { return c.Price }
func (CatalogMaterial) isMaterialSource()        {}

func (c CatalogMaterial) Label() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Reference
}

// CableMaterial carries the cable/accessory fields the backend joins into a material line.
type CableMaterial struct {
	CableAccessoryID int64  `json:"cable_accessory_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MeasurementType  string `json:"measurement_type"`
	Price            string `json:"price"`
}

func (CableMaterial) Kind() MaterialSourceKind { return MaterialSourceCable }
func (c CableMaterial) ItemID() int64          { return c.CableAccessoryID }
func (c CableMaterial) Label() string          { return c.Name }
func (c CableMaterial) UnitPrice() string      { return c.Price }
func (CableMaterial) isMaterialSource()        {}

// ProcessMaterial is one material line of a process.
type ProcessMaterial struct {
	ID        int64
	ProcessID int64
	Quantity  int
	Source    MaterialSource
}

func (m ProcessMaterial) Ref() MaterialRef {
	if m.Source == nil {
		return MaterialRef{}
	}
	return MaterialRef{Kind: m.Source.Kind(), ID: m.Source.ItemID()}
}

func (m ProcessMaterial) Label() string {
	if m.Source == nil || m.Source.Label() == "" {
		return "Material"
	}
	return m.Source.Label()
}

// LineTotal is unit price times quantity. Unparseable prices count as zero.
func (m ProcessMaterial) LineTotal() decimal.Decimal {
	if m.Source == nil {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(m.Source.UnitPrice())
	if err != nil {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// MaterialRef points at exactly one catalog item. The zero value points at nothing.
type MaterialRef struct {
	Kind MaterialSourceKind `json:"kind"`
	ID   int64              `json:"id"`
}

func CatalogRef(id int64) MaterialRef { return MaterialRef{Kind: MaterialSourceCatalog, ID: id} }
func CableRef(id int64) MaterialRef   { return MaterialRef{Kind: MaterialSourceCable, ID: id} }

func (r MaterialRef) IsZero() bool {
	return !r.Kind.Valid() || r.ID <= 0
}

func (r MaterialRef) CatalogID() int64 {
	if r.Kind == MaterialSourceCatalog {
		return r.ID
	}
	return 0
}

func (r MaterialRef) CableAccessoryID() int64 {
	if r.Kind == MaterialSourceCable {
		return r.ID
	}
	return 0
}

// MaterialSourceFor returns the bare source ref points at, without display fields. It is nil
// for the zero ref.
func MaterialSourceFor(ref MaterialRef) MaterialSource {
	switch {
	case ref.IsZero():
		return nil
	case ref.Kind == MaterialSourceCable:
		return CableMaterial{CableAccessoryID: ref.ID}
	default:
		return CatalogMaterial{CatalogID: ref.ID}
	}
}

// MaterialInput is a validated material line ready to be sent to the backend.
type MaterialInput struct {
	ProcessID int64
	Ref       MaterialRef
	Quantity  int
}

// MaterialDraft is the pending-add (or pending-edit) form of a material line, in the
// flat shape the UI submits. Validate turns it into a MaterialInput.
type MaterialDraft struct {
	CatalogID        int64 `json:"catalog_id"`
	CableAccessoryID int64 `json:"cable_accessory_id"`
	Quantity         int   `json:"quantity"`
}

// NewMaterialDraft returns the blank draft the add form starts from.
func NewMaterialDraft() MaterialDraft {
	return MaterialDraft{Quantity: 1}
}

// Select applies a picker selection, clearing the other source's key.
func (d *MaterialDraft) Select(sel MaterialSelection) {
	ref := sel.Ref()
	d.CatalogID = ref.CatalogID()
	d.CableAccessoryID = ref.CableAccessoryID()
}

// Ref resolves the draft into a single source, enforcing mutual exclusivity.
func (d MaterialDraft) Ref() (MaterialRef, error) {
	hasCatalog := d.CatalogID > 0
	hasCable := d.CableAccessoryID > 0
	switch {
	case hasCatalog && hasCable:
		return MaterialRef{}, ErrMaterialSourceConflict
	case hasCatalog:
		return CatalogRef(d.CatalogID), nil
	case hasCable:
		return CableRef(d.CableAccessoryID), nil
	default:
		return MaterialRef{}, ErrMaterialSourceMissing
	}
}

// Validate checks quantity first, then the source, and builds the backend input.
func (d MaterialDraft) Validate(processID int64) (MaterialInput, error) {
	if d.Quantity <= 0 {
		return MaterialInput{}, ErrMaterialQuantity
	}
	ref, err := d.Ref()
	if err != nil {
		return MaterialInput{}, err
	}
	return MaterialInput{ProcessID: processID, Ref: ref, Quantity: d.Quantity}, nil
}

// MaterialPatch is a partial edit of an existing material line. Nil fields keep the
// current value.
type MaterialPatch struct {
	CatalogID        *int64 `json:"catalog_id"`
	CableAccessoryID *int64 `json:"cable_accessory_id"`
	Quantity         *int   `json:"quantity"`
}

// Apply merges the patch over the current line and returns the resulting draft.
func (p MaterialPatch) Apply(current ProcessMaterial) MaterialDraft {
	ref := current.Ref()
	d := MaterialDraft{
		CatalogID:        ref.CatalogID(),
		CableAccessoryID: ref.CableAccessoryID(),
		Quantity:         current.Quantity,
	}
	if p.CatalogID != nil {
		d.CatalogID = *p.CatalogID
	}
	if p.CableAccessoryID != nil {
		d.CableAccessoryID = *p.CableAccessoryID
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	return d
}

// MaterialSelection is the picker's choice: a CatalogSelection or a CableSelection.
type MaterialSelection interface {
	Ref() MaterialRef
	Label() string
}

type CatalogSelection struct {
	Product CatalogProduct
}

func (s CatalogSelection) Ref() MaterialRef { return CatalogRef(s.Product.ID) }
func (s CatalogSelection) Label() string {
	if s.Product.Description != "" {
		return s.Product.Description
	}
	return s.Product.Reference
}

type CableSelection struct {
	Item CableOrAccessory
}

func (s CableSelection) Ref() MaterialRef { return CableRef(s.Item.ID) }
func (s CableSelection) Label() string    { return s.Item.Name }
