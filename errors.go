package tint

import "errors"

// ErrInvalidArgument indicates a parameter outside its documented domain:
// an alpha or interpolation value outside [0, 1], a malformed hex string,
// or an unknown color name.
var ErrInvalidArgument = errors.New("tint: invalid argument")

// ErrConversionUnsupported indicates a conversion to a Space that has no
// registered constructor.
var ErrConversionUnsupported = errors.New("tint: conversion unsupported")
