package common

// UnknownStr is the String() of out-of-range enum values.
const UnknownStr = "unknown"
