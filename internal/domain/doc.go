// Package domain contains the core business entities and domain logic of
// the card catalog: the Type lookup entity, the PokemonCard record, and
// the User account. It is independent of any specific infrastructure or
// delivery mechanism.
package domain
