package order

import (
	"errors"
	"fmt"
	"time"

	"tradefinance/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// DeliveryDateLayout is the wire format of the latest delivery date.
const DeliveryDateLayout = time.DateOnly

// Order represents one purchase order moving through the escrow workflow.
// It is the aggregate root and the only unit of persistence; no sub-record
// is individually addressable.
//
// Order maintains these invariants:
//   - identifier, product, quantity, price, shipping data are immutable
//     after creation
//   - price is never below the shipping costs
//   - the state only changes along the transitions defined by State
//   - the tracking code is set exactly once, by Ship
//   - arrival signatures are monotonic; only cancellation supersedes them
type Order struct {
	id                 string
	state              State
	productID          int
	quantity           int
	price              int64
	shippingCosts      int64
	shippingAddress    string
	latestDeliveryDate time.Time
	trackingCode       *string
	buyerSigned        bool
	freightSigned      bool

	isConstructed bool
}

// NewOrder creates a new order in Created state from caller-supplied fields.
// The latest delivery date is parsed from YYYY-MM-DD. All signature and
// tracking fields start unset.
//
// Validation failures are joined so the caller sees every rejected field at
// once; any failure means nothing was created.
func NewOrder(
	id string,
	productID int,
	quantity int,
	price int64,
	shippingCosts int64,
	shippingAddress string,
	latestDeliveryDate string,
) (*Order, error) {
	o := &Order{
		state:         Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setPricing(price, shippingCosts),
		o.setShippingAddress(shippingAddress),
		o.setLatestDeliveryDate(latestDeliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running the
// creation-time checks, but still refusing records whose state value is not
// a workflow state. Used only by storage adapters.
func RestoreOrder(
	id string,
	state State,
	productID int,
	quantity int,
	price int64,
	shippingCosts int64,
	shippingAddress string,
	latestDeliveryDate time.Time,
	trackingCode *string,
	buyerSigned bool,
	freightSigned bool,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	var tracking *string
	if trackingCode != nil {
		code := *trackingCode
		tracking = &code
	}

	return &Order{
		id:                 id,
		state:              state,
		productID:          productID,
		quantity:           quantity,
		price:              price,
		shippingCosts:      shippingCosts,
		shippingAddress:    shippingAddress,
		latestDeliveryDate: latestDeliveryDate,
		trackingCode:       tracking,
		buyerSigned:        buyerSigned,
		freightSigned:      freightSigned,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// ProductID returns the identifier of the traded good.
func (o *Order) ProductID() int {
	return o.productID
}

// Quantity returns the traded quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the agreed monetary amount, currency-unit-agnostic.
func (o *Order) Price() int64 {
	return o.price
}

// ShippingCosts returns the shipping cost share of the price.
func (o *Order) ShippingCosts() int64 {
	return o.shippingCosts
}

// ShippingAddress returns the free-text delivery destination.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// LatestDeliveryDate returns the agreed deadline, at day granularity.
func (o *Order) LatestDeliveryDate() time.Time {
	return o.latestDeliveryDate
}

// TrackingCode returns the carrier tracking code, or nil before shipment.
func (o *Order) TrackingCode() *string {
	if o.trackingCode == nil {
		return nil
	}
	code := *o.trackingCode
	return &code
}

// BuyerSigned reports whether the buyer has signed the arrival.
func (o *Order) BuyerSigned() bool {
	return o.buyerSigned
}

// FreightSigned reports whether the freight carrier has signed the arrival.
func (o *Order) FreightSigned() bool {
	return o.freightSigned
}

// Confirm moves the order from Created to Confirmed. Performed by the buyer
// accepting the order terms.
func (o *Order) Confirm() error {
	newState, err := o.state.Confirm()
	if err != nil {
		return err
	}

	o.state = newState
	return nil
}

// Ship moves the order from Confirmed to Shipped and records the carrier
// tracking code. The tracking code is required and set exactly once.
func (o *Order) Ship(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}

	newState, err := o.state.Ship()
	if err != nil {
		return err
	}

	o.state = newState
	o.trackingCode = &trackingCode
	return nil
}

// SignArrival records arrival attestations for the given parties. The order
// must be Shipped. Signatures are monotonic: re-signing is a no-op. Once
// both the buyer and the freight carrier have signed, the order closes as
// Delivered; neither party alone can force closure.
func (o *Order) SignArrival(byBuyer, byFreight bool) error {
	if !byBuyer && !byFreight {
		return errs.NewValueIsRequiredError("signing party")
	}

	if o.state != Shipped {
		return errs.NewStateIsInvalidError("sign arrival", o.state.String())
	}

	if byBuyer {
		o.buyerSigned = true
	}
	if byFreight {
		o.freightSigned = true
	}

	if o.buyerSigned && o.freightSigned {
		newState, err := o.state.Deliver()
		if err != nil {
			return err
		}
		o.state = newState
	}

	return nil
}

// SignArrivalByBuyer records the buyer's arrival attestation.
func (o *Order) SignArrivalByBuyer() error {
	return o.SignArrival(true, false)
}

// SignArrivalByFreight records the freight carrier's arrival attestation.
func (o *Order) SignArrivalByFreight() error {
	return o.SignArrival(false, true)
}

// Cancel moves a pre-shipment order (Created or Confirmed) to Cancelled.
// Cancellation supersedes any other pending progress; the record is kept
// for audit.
func (o *Order) Cancel() error {
	newState, err := o.state.Cancel()
	if err != nil {
		return err
	}

	o.state = newState
	return nil
}

// PassDeadline compares the invocation-time clock against the stored latest
// delivery date. Before the deadline it reports false and mutates nothing,
// so it is safe to call repeatedly. After the deadline it moves the order to
// Passed exactly once and reports true. Orders that reached delivery or a
// later terminal state reject the check.
func (o *Order) PassDeadline(now time.Time) (bool, error) {
	if o.state.ReachedDelivery() {
		return false, errs.NewStateIsInvalidError("pass deadline", o.state.String())
	}

	if !now.After(o.latestDeliveryDate) {
		return false, nil
	}

	newState, err := o.state.Pass()
	if err != nil {
		return false, err
	}

	o.state = newState
	return true, nil
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPricing(price, shippingCosts int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	if shippingCosts < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCosts",
			fmt.Errorf("%d is negative", shippingCosts))
	}
	if price < shippingCosts {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("price %d is lower than shipping costs %d", price, shippingCosts))
	}
	o.price = price
	o.shippingCosts = shippingCosts
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setLatestDeliveryDate(raw string) error {
	parsed, err := time.Parse(DeliveryDateLayout, raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("latestDeliveryDate", err)
	}
	o.latestDeliveryDate = parsed
	return nil
}
