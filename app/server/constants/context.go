package constants

// echo context 中流水线各阶段之间传递的数据
const (
	ContextKeyUser         = "user"
	ContextKeyBody         = "body"
	ContextKeyUpload       = "upload"
	ContextKeyPokemonInput = "pokemonInput"
	ContextKeyListQuery    = "listQuery"
)
