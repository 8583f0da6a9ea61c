// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

package resumemd

import "errors"

var (
	// ErrReadResumeFile is returned when resume file loading fails.
	ErrReadResumeFile = errors.New("read resume file")
	// ErrDecodeResume is returned when resume JSON or YAML decoding fails.
	ErrDecodeResume = errors.New("decode resume")
	// ErrResumeRootType is returned when decoded resume root is neither object nor null.
	ErrResumeRootType = errors.New("resume root must be object")
	// ErrUnknownInputFormat is returned when requested input format is not supported.
	ErrUnknownInputFormat = errors.New("unknown input format")
	// ErrUnknownSampleFormat is returned when requested sample format is not supported.
	ErrUnknownSampleFormat = errors.New("unknown sample format")
	// ErrReadSample is returned when embedded sample resume loading fails.
	ErrReadSample = errors.New("read sample resume")
	// ErrEncodeSampleYAML is returned when sample resume YAML encoding fails.
	ErrEncodeSampleYAML = errors.New("encode sample yaml")
)
