package app

import "embed"

//go:embed web
var web embed.FS

//go:embed "web/_drafts/Old.vue"
var draft string
