package payment

import (
	"fmt"
	"io"

	"github.com/selectdb/design_patterns/pkg/xerror"
)

// PaymentStrategy pays amount and reports it on out, amounts are not validated
type PaymentStrategy interface {
	Name() string
	Pay(out io.Writer, amount int) error
}

func report(out io.Writer, amount int, via string) error {
	if _, err := fmt.Fprintf(out, "Paid $%d using %s\n", amount, via); err != nil {
		return xerror.Wrapf(err, xerror.Payment, "report payment of %d", amount)
	}
	return nil
}

type CreditCardStrategy struct {
	cardNumber     string
	expirationDate string
}

func NewCreditCardStrategy(cardNumber, expirationDate string) *CreditCardStrategy {
	return &CreditCardStrategy{
		cardNumber:     cardNumber,
		expirationDate: expirationDate,
	}
}

func (s *CreditCardStrategy) Name() string {
	return "credit_card"
}

func (s *CreditCardStrategy) CardNumber() string {
	return s.cardNumber
}

func (s *CreditCardStrategy) ExpirationDate() string {
	return s.expirationDate
}

func (s *CreditCardStrategy) Pay(out io.Writer, amount int) error {
	return report(out, amount, "credit card "+s.cardNumber)
}

type PayPalStrategy struct {
	email string
}

func NewPayPalStrategy(email string) *PayPalStrategy {
	return &PayPalStrategy{email: email}
}

func (s *PayPalStrategy) Name() string {
	return "paypal"
}

func (s *PayPalStrategy) Email() string {
	return s.email
}

func (s *PayPalStrategy) Pay(out io.Writer, amount int) error {
	return report(out, amount, "PayPal account "+s.email)
}

type BankTransferStrategy struct {
	accountNumber string
}

func NewBankTransferStrategy(accountNumber string) *BankTransferStrategy {
	return &BankTransferStrategy{accountNumber: accountNumber}
}

func (s *BankTransferStrategy) Name() string {
	return "bank_transfer"
}

func (s *BankTransferStrategy) AccountNumber() string {
	return s.accountNumber
}

func (s *BankTransferStrategy) Pay(out io.Writer, amount int) error {
	return report(out, amount, "bank transfer to account "+s.accountNumber)
}
