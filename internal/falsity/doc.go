// Package falsity provides the boolean-coercion trait used by absence
// sentinels.
//
// Go has no native truthiness hook, so the "evaluates false in a boolean
// context" contract is expressed as the Booler interface. False is an
// embeddable implementation that always reports false; Truth evaluates
// arbitrary values the way a Python-style conditional would, consulting
// Booler first.
package falsity
