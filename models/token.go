// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the server.
//
// The "sub" registered claim carries the user ID; RoleID is a private claim
// so that authorization decisions do not require a database round trip.
type Claims struct {
	jwt.RegisteredClaims

	// RoleID is the role of the user at the moment the token was issued.
	RoleID int64 `json:"roleId"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// RoleID is the role identifier extracted from the "roleId" claim.
	RoleID int64 `json:"-"`
}

// Caller returns the request identity carried by the token.
func (t Token) Caller() Caller {
	return Caller{UserID: t.UserID, RoleID: t.RoleID}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// GetUserID parses the "sub" claim of c as a base-10 int64.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}
