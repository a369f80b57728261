package cloudinary_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/pkg/cloudinary"
)

func TestSplitKey(t *testing.T) {
	folder, publicID := cloudinary.SplitKey("formation", "students/12/avatar.png")
	require.Equal(t, "formation/students/12", folder)
	require.Equal(t, "avatar", publicID)

	folder, publicID = cloudinary.SplitKey("", "../../etc/passwd")
	require.Equal(t, "etc", folder)
	require.Equal(t, "passwd", publicID)

	_, publicID = cloudinary.SplitKey("formation", "  ")
	require.Empty(t, publicID)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := cloudinary.New(cloudinary.Config{CloudName: "demo"}, zerolog.Nop())
	require.Error(t, err)

	svc, err := cloudinary.New(cloudinary.Config{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "/formation/"}, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, svc)
}
