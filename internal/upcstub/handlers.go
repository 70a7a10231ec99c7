package upcstub

import (
	"bytes"
	"image/color"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

func lookupHandler(c Catalog) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Query("key") == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}
		code := ctx.Param("code")
		e, ok := c[code]
		if !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"code": code, "error": "product not found"})
			return
		}

		product := gin.H{"name": e.Name}
		if e.Brand != "" {
			product["brand"] = e.Brand
		}
		if !e.NoImageKey {
			if e.ImageURL == nil {
				product["imageUrl"] = nil
			} else {
				product["imageUrl"] = absolute(ctx, *e.ImageURL)
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"code": code, "codeType": "UPC", "product": product})
	}
}

// absolute resolves host-relative image paths against the stub's own address
func absolute(ctx *gin.Context, u string) string {
	if strings.HasPrefix(u, "/") {
		return "http://" + ctx.Request.Host + u
	}
	return u
}

// imageHandler serves a grey placeholder JPEG sized from ?w= and ?h=
func imageHandler(ctx *gin.Context) {
	w, h := 640, 480
	if v, ok := parseSize(ctx.Query("w")); ok {
		w = v
	}
	if v, ok := parseSize(ctx.Query("h")); ok {
		h = v
	}
	img := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}
