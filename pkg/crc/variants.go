// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

// Package-level engines, built once at init with the default method
var (
	CRC8Variant            = New(CRC8Params, defaultMethod)
	CRC8CDMA2000Variant    = New(CRC8CDMA2000Params, defaultMethod)
	CRC8DARCVariant        = New(CRC8DARCParams, defaultMethod)
	CRC8DVBS2Variant       = New(CRC8DVBS2Params, defaultMethod)
	CRC8EBUVariant         = New(CRC8EBUParams, defaultMethod)
	CRC8ICODEVariant       = New(CRC8ICODEParams, defaultMethod)
	CRC8ITUVariant         = New(CRC8ITUParams, defaultMethod)
	CRC8MAXIMVariant       = New(CRC8MAXIMParams, defaultMethod)
	CRC8ROHCVariant        = New(CRC8ROHCParams, defaultMethod)
	CRC8WCDMAVariant       = New(CRC8WCDMAParams, defaultMethod)
	CRC16ARCVariant        = New(CRC16ARCParams, defaultMethod)
	CRC16CCITTFalseVariant = New(CRC16CCITTFalseParams, defaultMethod)
)

//////////////////////////////////////////////////////////////
// CRC-8
//////////////////////////////////////////////////////////////

// CRC8 computes CRC-8 (poly 0x07) of data
func CRC8(data []byte) uint8 {
	return CRC8Variant.Calculate(data)
}

// CRC8Partial folds one byte into a CRC-8 register
func CRC8Partial(b byte, crc uint8) uint8 {
	return CRC8Variant.Partial(b, crc, false)
}

// CRC8CDMA2000 computes CRC-8/CDMA2000 of data
func CRC8CDMA2000(data []byte) uint8 {
	return CRC8CDMA2000Variant.Calculate(data)
}

// CRC8CDMA2000Partial folds one byte into a CRC-8/CDMA2000 register
func CRC8CDMA2000Partial(b byte, crc uint8) uint8 {
	return CRC8CDMA2000Variant.Partial(b, crc, false)
}

// CRC8DARC computes CRC-8/DARC of data
func CRC8DARC(data []byte) uint8 {
	return CRC8DARCVariant.Calculate(data)
}

// CRC8DARCPartial folds one byte into a CRC-8/DARC register. Set final
// on the last byte of the message to reflect the output.
func CRC8DARCPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8DARCVariant.Partial(b, crc, final)
}

// CRC8DVBS2 computes CRC-8/DVB-S2 of data
func CRC8DVBS2(data []byte) uint8 {
	return CRC8DVBS2Variant.Calculate(data)
}

// CRC8DVBS2Partial folds one byte into a CRC-8/DVB-S2 register
func CRC8DVBS2Partial(b byte, crc uint8) uint8 {
	return CRC8DVBS2Variant.Partial(b, crc, false)
}

// CRC8EBU computes CRC-8/EBU (AES/EBU, Tech 3250) of data
func CRC8EBU(data []byte) uint8 {
	return CRC8EBUVariant.Calculate(data)
}

// CRC8EBUPartial folds one byte into a CRC-8/EBU register. Set final on
// the last byte of the message to reflect the output.
func CRC8EBUPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8EBUVariant.Partial(b, crc, final)
}

// CRC8ICODE computes CRC-8/I-CODE of data
func CRC8ICODE(data []byte) uint8 {
	return CRC8ICODEVariant.Calculate(data)
}

// CRC8ICODEPartial folds one byte into a CRC-8/I-CODE register
func CRC8ICODEPartial(b byte, crc uint8) uint8 {
	return CRC8ICODEVariant.Partial(b, crc, false)
}

// CRC8ITU computes CRC-8/ITU (I.432.1) of data
func CRC8ITU(data []byte) uint8 {
	return CRC8ITUVariant.Calculate(data)
}

// CRC8ITUPartial folds one byte into a CRC-8/ITU register. Set final on
// the last byte of the message to apply the 0x55 output mask.
func CRC8ITUPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8ITUVariant.Partial(b, crc, final)
}

// CRC8MAXIM computes CRC-8/MAXIM (Dallas 1-Wire) of data
func CRC8MAXIM(data []byte) uint8 {
	return CRC8MAXIMVariant.Calculate(data)
}

// CRC8MAXIMPartial folds one byte into a CRC-8/MAXIM register. Set final
// on the last byte of the message to reflect the output.
func CRC8MAXIMPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8MAXIMVariant.Partial(b, crc, final)
}

// CRC8ROHC computes CRC-8/ROHC of data
func CRC8ROHC(data []byte) uint8 {
	return CRC8ROHCVariant.Calculate(data)
}

// CRC8ROHCPartial folds one byte into a CRC-8/ROHC register. Set final on
// the last byte of the message to reflect the output.
func CRC8ROHCPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8ROHCVariant.Partial(b, crc, final)
}

// CRC8WCDMA computes CRC-8/WCDMA of data
func CRC8WCDMA(data []byte) uint8 {
	return CRC8WCDMAVariant.Calculate(data)
}

// CRC8WCDMAPartial folds one byte into a CRC-8/WCDMA register. Set final
// on the last byte of the message to reflect the output.
func CRC8WCDMAPartial(b byte, crc uint8, final bool) uint8 {
	return CRC8WCDMAVariant.Partial(b, crc, final)
}

//////////////////////////////////////////////////////////////
// CRC-16
//////////////////////////////////////////////////////////////

// CRC16ARC computes CRC-16/ARC of data
func CRC16ARC(data []byte) uint16 {
	return CRC16ARCVariant.Calculate(data)
}

// CRC16ARCPartial folds one byte into a CRC-16/ARC register. Set final on
// the last byte of the message to reflect the output.
func CRC16ARCPartial(b byte, crc uint16, final bool) uint16 {
	return CRC16ARCVariant.Partial(b, crc, final)
}

// CRC16CCITTFalse computes CRC-16/CCITT-FALSE of data. This is the
// checksum carried by Helios and Fusain packets.
func CRC16CCITTFalse(data []byte) uint16 {
	return CRC16CCITTFalseVariant.Calculate(data)
}

// CRC16CCITTFalsePartial folds one byte into a CRC-16/CCITT-FALSE register
func CRC16CCITTFalsePartial(b byte, crc uint16) uint16 {
	return CRC16CCITTFalseVariant.Partial(b, crc, false)
}
