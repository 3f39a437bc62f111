// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the feed API.
//
// Every Msg* constant is written verbatim into a `{"msg": ...}` response
// body. Browser clients match on some of them, so the wording is part of the
// API contract.
package app

const (
	// MsgAPIRunning is the plain-text body of the root health route.
	MsgAPIRunning = "API is running..."

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidData is the fallback for a validation failure without a
	// more specific message.
	MsgInvalidData = "Invalid data provided"
)

// Registration.
const (
	MsgMissingRegistrationFields = "Please enter all fields (Name, Email, Password)"
	MsgInvalidEmail              = "Please enter a valid email address"
	MsgPasswordTooShort          = "Password must be at least 6 characters long"
	MsgPasswordTooLong           = "Password must be at most 72 bytes long"
	MsgAccountAlreadyExists      = "An account with this email already exists."
	MsgRegistered                = "User registered successfully! Welcome!"
	MsgRegistrationFailed        = "Something went wrong on our end. Please try again."
)

// Login.
const (
	MsgMissingLoginFields = "Please enter both email and password"

	// MsgInvalidCredentials covers both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "Invalid Credentials"
	MsgLoggedIn           = "Login successful!"
	MsgLoginFailed        = "Something went wrong on our end during login. Please try again."
)

// Auth gate.
const (
	MsgNoToken      = "Access Denied: No Token Provided"
	MsgInvalidToken = "Invalid Token"
)

// Posts.
const (
	MsgMissingPostFields  = "Title and description are required."
	MsgPostCreated        = "Post created successfully!"
	MsgPostCreationFailed = "Server error during post creation."
	MsgPostsFetchFailed   = "Server error while fetching posts."
)
