package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PaymentInfo is the checkout form. Validation here is format-only; the
// card number never leaves the process and no payment network is contacted.
type PaymentInfo struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Address    Address `json:"address"`
	CardNumber string  `json:"cardNumber"`
	ExpiryDate string  `json:"expiryDate"`
	CVC        string  `json:"cvc"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

var (
	emailRe  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	stateRe  = regexp.MustCompile(`^[A-Za-z]{2}$`)
	zipRe    = regexp.MustCompile(`^\d{5}$`)
	cardRe   = regexp.MustCompile(`^\d{16}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcRe    = regexp.MustCompile(`^\d{3}$`)
)

// ValidatePayment returns one message per failing field, keyed the way the
// payment form names its inputs. An empty map means the form is acceptable.
func ValidatePayment(info PaymentInfo) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = "Name is required."
	}
	if !emailRe.MatchString(info.Email) {
		errs["email"] = "Invalid email address."
	}
	if strings.TrimSpace(info.Address.Street) == "" {
		errs["street"] = "Street address is required."
	}
	if strings.TrimSpace(info.Address.City) == "" {
		errs["city"] = "City is required."
	}
	if !stateRe.MatchString(strings.TrimSpace(info.Address.State)) {
		errs["state"] = "State must be 2 letters."
	}
	if !zipRe.MatchString(strings.TrimSpace(info.Address.Zip)) {
		errs["zip"] = "ZIP code must be 5 digits."
	}
	if !cardRe.MatchString(info.CardNumber) {
		errs["cardNumber"] = "Card number must be 16 digits."
	}
	if !expiryRe.MatchString(info.ExpiryDate) {
		errs["expiryDate"] = "Expiry must be in MM/YY format."
	} else {
		parts := strings.Split(info.ExpiryDate, "/")
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		if expiry.Before(time.Now()) {
			errs["expiryDate"] = "Expiry date must be in the future."
		}
	}
	if !cvcRe.MatchString(info.CVC) {
		errs["cvc"] = "CVC must be 3 digits."
	}

	return errs
}
