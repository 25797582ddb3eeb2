package model

import "strings"

// PaymentMethod is the closed set of payment methods offered by the booking
// form. Anything unrecognised is Other.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodDebitCard    PaymentMethod = "Debit Card"
	PaymentMethodUSSD         PaymentMethod = "USSD"
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodOther        PaymentMethod = "Other"
)

// Channel is the payment path a method settles through.
type Channel int

const (
	ChannelNone Channel = iota
	ChannelBank
	ChannelCard
	ChannelUSSD
)

const (
	MonnifyMethodCard            = "CARD"
	MonnifyMethodAccountTransfer = "ACCOUNT_TRANSFER"
	MonnifyMethodUSSD            = "USSD"
)

var channels = map[PaymentMethod]Channel{
	PaymentMethodBankTransfer: ChannelBank,
	PaymentMethodCreditCard:   ChannelCard,
	PaymentMethodDebitCard:    ChannelCard,
	PaymentMethodUSSD:         ChannelUSSD,
	PaymentMethodCash:         ChannelNone,
	PaymentMethodOther:        ChannelNone,
}

var monnifyMethods = map[Channel][]string{
	ChannelCard: {MonnifyMethodCard, MonnifyMethodAccountTransfer},
	ChannelUSSD: {MonnifyMethodUSSD},
}

// ParsePaymentMethod matches the exact labels the booking form submits,
// ignoring surrounding whitespace.
func ParsePaymentMethod(raw string) PaymentMethod {
	method := PaymentMethod(strings.TrimSpace(raw))
	if _, ok := channels[method]; ok {
		return method
	}

	return PaymentMethodOther
}

func (m PaymentMethod) Channel() Channel {
	return channels[m]
}

func (m PaymentMethod) IsBankTransfer() bool {
	return m.Channel() == ChannelBank
}

// MonnifyMethods lists the checkout methods to offer on Monnify, or nil to
// let Monnify offer everything enabled on the contract.
func (m PaymentMethod) MonnifyMethods() []string {
	return monnifyMethods[m.Channel()]
}
