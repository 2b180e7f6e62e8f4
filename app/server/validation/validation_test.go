package validation

import (
	"strings"
	"testing"

	"pokedex-api/app/server/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	var out []string
	for _, fe := range verrs {
		out = append(out, fe.Field)
	}
	return out
}

func validPokemon() types.PokemonInput {
	return types.PokemonInput{
		Name:       ptr("Pokamion"),
		Ability:    ptr("Pesao"),
		FirstType:  ptr("Water"),
		SecondType: ptr("Normal"),
		Height:     ptr(0.0),
		Weight:     ptr(0.0),
		BaseExp:    ptr(0.0),
		Image:      ptr("a1b2-image.png"),
	}
}

func TestCreatePokemonRules_Valid(t *testing.T) {
	assert.NoError(t, Validate(validPokemon(), CreatePokemonRules))

	p := validPokemon()
	p.SecondType = nil
	assert.NoError(t, Validate(p, CreatePokemonRules))
}

func TestCreatePokemonRules_ReportsEveryField(t *testing.T) {
	p := types.PokemonInput{
		Name:    ptr("Pokamionnnnnn"),
		Height:  ptr(501.0),
		Weight:  ptr(1000.5),
		BaseExp: ptr(301.0),
	}

	err := Validate(p, CreatePokemonRules)

	assert.ElementsMatch(t,
		[]string{"name", "ability", "firstType", "height", "weight", "baseExp", "image"},
		fields(t, err),
	)
}

func TestCreatePokemonRules_BoundariesAreInclusive(t *testing.T) {
	p := validPokemon()
	p.Name = ptr(strings.Repeat("a", MaxPokemonNameLength))
	p.Height = ptr(MaxHeight)
	p.Weight = ptr(MaxWeight)
	p.BaseExp = ptr(MaxBaseExp)

	assert.NoError(t, Validate(p, CreatePokemonRules))
}

func TestCreatePokemonRules_RejectsNegative(t *testing.T) {
	p := validPokemon()
	p.Height = ptr(-1.0)

	assert.Equal(t, []string{"height"}, fields(t, Validate(p, CreatePokemonRules)))
}

func TestEditPokemonRules(t *testing.T) {
	assert.NoError(t, Validate(types.PokemonInput{}, EditPokemonRules))
	assert.NoError(t, Validate(types.PokemonInput{Weight: ptr(20.0)}, EditPokemonRules))

	err := Validate(types.PokemonInput{Name: ptr(""), Weight: ptr(2000.0)}, EditPokemonRules)
	assert.ElementsMatch(t, []string{"name", "weight"}, fields(t, err))
}

func TestRegisterRules(t *testing.T) {
	valid := types.RegisterRequest{
		Username: ptr("ash"),
		Email:    ptr("ash.ketchum@pallet-town.com"),
		Password: ptr("pikachu123"),
	}
	assert.NoError(t, Validate(valid, RegisterRules))

	invalid := types.RegisterRequest{
		Username: ptr("ashketchum1234"),
		Email:    ptr("not-an-email"),
		Password: ptr("short"),
	}
	assert.ElementsMatch(t, []string{"username", "email", "password"}, fields(t, Validate(invalid, RegisterRules)))

	tooLong := valid
	tooLong.Password = ptr(strings.Repeat("p", MaxPasswordLength+1))
	assert.Equal(t, []string{"password"}, fields(t, Validate(tooLong, RegisterRules)))
}

func TestLoginRules(t *testing.T) {
	assert.NoError(t, Validate(types.LoginRequest{Username: ptr("ash"), Password: ptr("x")}, LoginRules))
	assert.ElementsMatch(t, []string{"username", "password"}, fields(t, Validate(types.LoginRequest{}, LoginRules)))
}

func TestListPokemonRules(t *testing.T) {
	assert.NoError(t, Validate(types.PokemonListQuery{}, ListPokemonRules))
	assert.NoError(t, Validate(types.PokemonListQuery{Type: ptr("Fire"), Page: ptr(0), Limit: ptr(10)}, ListPokemonRules))

	err := Validate(types.PokemonListQuery{Page: ptr(-1), Limit: ptr(MaxPageLimit + 1)}, ListPokemonRules)
	assert.ElementsMatch(t, []string{"page", "limit"}, fields(t, err))
}

func TestErrors_Message(t *testing.T) {
	err := Validate(types.LoginRequest{}, LoginRules)
	assert.EqualError(t, err, `validation failed: "username" is required; "password" is required`)
}

func TestMerge(t *testing.T) {
	parsed := Errors{{Field: "height", Message: `"height" must be a number`}}
	ruled := Validate(types.PokemonInput{}, CreatePokemonRules)

	merged := Merge(parsed, ruled)

	var verrs Errors
	require.ErrorAs(t, merged, &verrs)
	count := 0
	for _, fe := range verrs {
		if fe.Field == "height" {
			count++
			assert.Equal(t, `"height" must be a number`, fe.Message)
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, verrs, len(CreatePokemonRules))

	assert.NoError(t, Merge(nil, nil))
}
