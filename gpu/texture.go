// seehuhn.de/go/lightly - rounded window corners for compositors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gpu uploads mask rasters into GPU textures.
//
// The package does not talk to a graphics API itself.  The host
// compositor provides a [Device], and textures are described with the
// WebGPU types from github.com/gogpu/gputypes.
package gpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// ErrUpload is returned when a raster cannot be turned into a texture.
var ErrUpload = errors.New("gpu: texture upload failed")

// Handle identifies a texture on the device.  The zero handle is invalid.
type Handle uintptr

// Device is the texture part of a GPU device.
type Device interface {
	CreateTexture(desc *gputypes.TextureDescriptor) (Handle, error)
	WriteTexture(dst *gputypes.ImageCopyTexture, data []byte, layout *gputypes.TextureDataLayout, size *gputypes.Extent3D) error
	ReleaseTexture(h Handle)
}

// Texture is an uploaded raster.
type Texture struct {
	Handle Handle
	Label  string
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// Uploader creates sampled RGBA textures on a device.
type Uploader struct {
	dev Device
}

// NewUploader returns an uploader for dev.
func NewUploader(dev Device) *Uploader {
	return &Uploader{dev: dev}
}

// Upload copies img into a new texture.  The pixel data is passed on
// unchanged, so premultiplied images give premultiplied textures.
func (u *Uploader) Upload(label string, img *image.RGBA) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrUpload, label)
	}

	desc := &gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.NewExtent2D(uint32(w), uint32(h)),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
	handle, err := u.dev.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpload, label, err)
	}

	dst := &gputypes.ImageCopyTexture{
		Texture: uintptr(handle),
		Origin:  gputypes.OriginZero,
		Aspect:  gputypes.TextureAspectAll,
	}
	layout := &gputypes.TextureDataLayout{
		BytesPerRow:  uint32(4 * w),
		RowsPerImage: uint32(h),
	}
	err = u.dev.WriteTexture(dst, packRows(img), layout, &desc.Size)
	if err != nil {
		u.dev.ReleaseTexture(handle)
		return nil, fmt.Errorf("%w: %s: %w", ErrUpload, label, err)
	}

	return &Texture{
		Handle: handle,
		Label:  label,
		Width:  w,
		Height: h,
		Format: desc.Format,
	}, nil
}

// Release frees the texture.  Releasing nil is a no-op.
func (u *Uploader) Release(t *Texture) {
	if t == nil || t.Handle == 0 {
		return
	}
	u.dev.ReleaseTexture(t.Handle)
	t.Handle = 0
}

// packRows returns the pixels of img without row padding.
func packRows(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	start := img.PixOffset(b.Min.X, b.Min.Y)
	if img.Stride == rowLen {
		return img.Pix[start : start+rowLen*b.Dy()]
	}
	res := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		res = append(res, img.Pix[o:o+rowLen]...)
	}
	return res
}
