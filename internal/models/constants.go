package models

// Charge bearer codes (ISO 20022 ChargeBearerType1Code)
const (
	ChargeBearerDebtor   = "DEBT"
	ChargeBearerCreditor = "CRED"
	ChargeBearerShared   = "SHAR"
)

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)
