// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
