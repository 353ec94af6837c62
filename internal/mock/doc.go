// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package mock contains mock implementations of the vendor interfaces the
runtime calls into, intended for use in unit-tests.

Each mocked package has a directory of the same name holding the generated
implementation. The package name of all mock implementations follows the
`mock_*` pattern, where `*` is the original package name; mocks of package
system live in `./system` as package `mock_system`.
*/
package mock

//go:generate mockgen -destination=system/system.go -package=mock_system code.hybscloud.com/callback/system API
