// Copyright 2026 AgriFarm authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package barcode decodes QR and EAN/UPC codes from still images.
package barcode

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoCode is returned when no supported code is found in an image.
var ErrNoCode = errors.New("no QR or barcode found")

// Decode returns the text of the first QR or EAN/UPC code found in img.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	readers := []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		oned.NewMultiFormatUPCEANReader(nil),
	}
	for _, r := range readers {
		if result, err := r.Decode(bmp, nil); err == nil {
			return result.GetText(), nil
		}
	}
	return "", ErrNoCode
}

// DecodeFile decodes the PNG or JPEG image at path.
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%v: %w", path, err)
	}
	text, err := Decode(img)
	if err != nil {
		return "", fmt.Errorf("%v: %w", path, err)
	}
	return text, nil
}
