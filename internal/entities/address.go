package entities

import "strings"

type Address struct {
	Line1   string `validate:"notblank"`
	City    string `validate:"notblank"`
	Region  string `validate:"notblank"`
	Postal  string `validate:"notblank"`
	Country string `validate:"notblank"`
}

func NewAddress(line1, city, region, postal, country string) (Address, error) {
	a := Address{
		Line1:   strings.TrimSpace(line1),
		City:    strings.TrimSpace(city),
		Region:  strings.TrimSpace(region),
		Postal:  strings.TrimSpace(postal),
		Country: strings.ToUpper(strings.TrimSpace(country)),
	}
	if err := validateStruct(a); err != nil {
		return Address{}, err
	}
	return a, nil
}

type Buyer struct {
	Name    string `validate:"notblank"`
	Address Address
}

func NewBuyer(name string, address Address) (Buyer, error) {
	b := Buyer{Name: strings.TrimSpace(name), Address: address}
	if err := validateStruct(b); err != nil {
		return Buyer{}, err
	}
	return b, nil
}
