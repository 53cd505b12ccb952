package gui

import "errors"

var errWindow = errors.New("raylib window not ready")
