package constants

import "time"

const AuthTokenDuration = 7 * 24 * time.Hour
