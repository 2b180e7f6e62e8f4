package constants

const DefaultPageSize = 10
