package validation

import (
	"pokedex-api/app/server/types"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

const (
	MaxUsernameLength = 12
	MaxEmailLength    = 40
	MinPasswordLength = 8
	MaxPasswordLength = 20

	MaxPokemonNameLength = 11
	MaxAbilityLength     = 11
	MaxTypeLength        = 20
	MaxHeight            = 500.0
	MaxWeight            = 1000.0
	MaxBaseExp           = 300.0
	MaxPageLimit         = 100
)

var LoginRules = []Rule[types.LoginRequest]{
	RequiredString("username", func(r types.LoginRequest) *string { return r.Username }),
	RequiredString("password", func(r types.LoginRequest) *string { return r.Password }),
}

var RegisterRules = []Rule[types.RegisterRequest]{
	RequiredString("username", func(r types.RegisterRequest) *string { return r.Username },
		MaxLen(MaxUsernameLength)),
	RequiredString("email", func(r types.RegisterRequest) *string { return r.Email },
		MaxLen(MaxEmailLength), Matches(emailPattern)),
	RequiredString("password", func(r types.RegisterRequest) *string { return r.Password },
		MinLen(MinPasswordLength), MaxLen(MaxPasswordLength)),
}

var CreatePokemonRules = []Rule[types.PokemonInput]{
	RequiredString("name", pokemonName, MaxLen(MaxPokemonNameLength)),
	RequiredString("ability", pokemonAbility, MaxLen(MaxAbilityLength)),
	RequiredString("firstType", pokemonFirstType, MaxLen(MaxTypeLength)),
	OptionalString("secondType", pokemonSecondType, MaxLen(MaxTypeLength)),
	RequiredNumber("height", pokemonHeight, Min(0.0), Max(MaxHeight)),
	RequiredNumber("weight", pokemonWeight, Min(0.0), Max(MaxWeight)),
	RequiredNumber("baseExp", pokemonBaseExp, Min(0.0), Max(MaxBaseExp)),
	RequiredString("image", func(p types.PokemonInput) *string { return p.Image }),
}

var EditPokemonRules = []Rule[types.PokemonInput]{
	OptionalString("name", pokemonName, MaxLen(MaxPokemonNameLength)),
	OptionalString("ability", pokemonAbility, MaxLen(MaxAbilityLength)),
	OptionalString("firstType", pokemonFirstType, MaxLen(MaxTypeLength)),
	OptionalString("secondType", pokemonSecondType, MaxLen(MaxTypeLength)),
	OptionalNumber("height", pokemonHeight, Min(0.0), Max(MaxHeight)),
	OptionalNumber("weight", pokemonWeight, Min(0.0), Max(MaxWeight)),
	OptionalNumber("baseExp", pokemonBaseExp, Min(0.0), Max(MaxBaseExp)),
}

var ListPokemonRules = []Rule[types.PokemonListQuery]{
	OptionalString("type", func(q types.PokemonListQuery) *string { return q.Type }, MaxLen(MaxTypeLength)),
	OptionalNumber("page", func(q types.PokemonListQuery) *int { return q.Page }, Min(0)),
	OptionalNumber("limit", func(q types.PokemonListQuery) *int { return q.Limit }, Min(1), Max(MaxPageLimit)),
}

func pokemonName(p types.PokemonInput) *string       { return p.Name }
func pokemonAbility(p types.PokemonInput) *string    { return p.Ability }
func pokemonFirstType(p types.PokemonInput) *string  { return p.FirstType }
func pokemonSecondType(p types.PokemonInput) *string { return p.SecondType }
func pokemonHeight(p types.PokemonInput) *float64    { return p.Height }
func pokemonWeight(p types.PokemonInput) *float64    { return p.Weight }
func pokemonBaseExp(p types.PokemonInput) *float64   { return p.BaseExp }
