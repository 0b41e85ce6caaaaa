// Package interfaces contains interfaces and configuration types that allow customization of SDK
// components.
//
// You will not need to refer to these types in your code unless you are creating a custom component
// factory; the standard implementations are provided by the inngestcomponents package.
package interfaces
