package utils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfind/arfind_admin/models"
)

func TestParseHelpers(t *testing.T) {
	f, err := ParseFloat(" 99.5 ")
	require.NoError(t, err)
	assert.Equal(t, 99.5, f)

	_, err = ParseFloat("abc")
	assert.Error(t, err)

	n, err := ParseInt("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseInt("2.5")
	assert.Error(t, err)

	assert.True(t, ParseBool("TRUE"))
	assert.True(t, ParseBool("true"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
}

func TestImageTargetFor(t *testing.T) {
	assert.Equal(t, imaging.JPEG, ImageTargetFor("foto.JPG").Format)
	assert.Equal(t, "image/jpeg", ImageTargetFor("foto.jpeg").ContentType)
	assert.Equal(t, imaging.PNG, ImageTargetFor("logo.png").Format)

	gif := ImageTargetFor("anim.gif")
	assert.Equal(t, "png", gif.Ext)
	assert.Equal(t, "image/png", gif.ContentType)
}

func TestReencodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, img))

	out, err := ReencodeImage(&src, ImageTargetFor("x.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2])

	_, err = ReencodeImage(bytes.NewReader([]byte("not an image")), ImageTargetFor("x.png"))
	assert.Error(t, err)
}

func TestSafeExtensionAndFolder(t *testing.T) {
	assert.Equal(t, "pdf", SafeExtension("../../Reporte Final.PDF"))
	assert.Equal(t, "bin", SafeExtension("README"))

	assert.Equal(t, "planes/2024", CleanFolder("/planes/../2024/", "uploads"))
	assert.Equal(t, "uploads", CleanFolder("", "uploads"))
	assert.Equal(t, "uploads", CleanFolder("../..", "uploads"))
}

type passwordForm struct {
	Nombre   string `validate:"required"`
	Password string `validate:"required,min=6"`
}

func TestFormErrorMessage(t *testing.T) {
	v := validator.New()

	err := v.Struct(passwordForm{Password: "123456"})
	assert.Equal(t, MsgRequiredFields, FormErrorMessage(err))

	err = v.Struct(passwordForm{Nombre: "Ana", Password: "123"})
	assert.Equal(t, MsgShortPassword, FormErrorMessage(err))

	assert.Equal(t, MsgBadRequest, FormErrorMessage(assert.AnError))
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := &models.Session{ID: NewSessionID(), Token: "tok", EmployeeName: "Ana", IsAdmin: true}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.EmployeeName)
	assert.True(t, got.Authenticated())

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewSessionStore_FallsBackToMemory(t *testing.T) {
	_, ok := NewSessionStore(nil, time.Hour).(*MemorySessionStore)
	assert.True(t, ok)
}
