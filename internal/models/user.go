package models

import "time"

// Address holds the postal address captured at registration.
type Address struct {
	Line1    string `db:"address_line1"`
	Line2    string `db:"address_line2"`
	Line3    string `db:"address_line3"`
	Town     string `db:"address_town"`
	County   string `db:"address_county"`
	Postcode string `db:"address_postcode"`
}

// User represents a registered customer identity
type User struct {
	CreatedAt    time.Time `db:"created_timestamp"`
	UpdatedAt    time.Time `db:"updated_timestamp"`
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Address      Address
	PhoneNumber  string `db:"phone_number"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}
