package certs

import (
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_GetOrCreateCertificate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	m := NewFileManager(dir)

	exists, err := m.CertificateExists()
	require.NoError(t, err)
	assert.False(t, exists)

	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)
	require.NotEmpty(t, cert.Certificate)

	exists, err = m.CertificateExists()
	require.NoError(t, err)
	assert.True(t, exists)

	info, err := os.Stat(filepath.Join(dir, "pockit.key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A second call reuses the stored certificate.
	again, err := m.GetOrCreateCertificate()
	require.NoError(t, err)
	assert.Equal(t, cert.Certificate[0], again.Certificate[0])
}

func TestFileManager_RegeneratesInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	m := NewFileManager(dir)

	require.NoError(t, os.WriteFile(m.certFile, []byte("garbage"), 0600))
	require.NoError(t, os.WriteFile(m.keyFile, []byte("garbage"), 0600))

	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)
	require.NotEmpty(t, cert.Certificate)
}

func TestFileManager_RegeneratesForNewHosts(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileManager(dir).GetOrCreateCertificate()
	require.NoError(t, err)

	second, err := NewFileManager(dir, "localhost", "pockit.local").GetOrCreateCertificate()
	require.NoError(t, err)
	assert.NotEqual(t, first.Certificate[0], second.Certificate[0])

	parsed, err := x509.ParseCertificate(second.Certificate[0])
	require.NoError(t, err)
	assert.Contains(t, parsed.DNSNames, "pockit.local")
}

func TestFileManager_verifyCertificate(t *testing.T) {
	m := NewFileManager(t.TempDir())
	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)

	tests := []struct {
		now     time.Time
		name    string
		wantErr bool
	}{
		{name: "fresh", now: time.Now()},
		{name: "not yet valid", now: time.Now().Add(-time.Hour), wantErr: true},
		{name: "inside renewal window", now: time.Now().Add(Validity - RenewBefore/2), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.verifyCertificate(cert, tt.now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCertificateProperties(t *testing.T) {
	m := NewFileManager(t.TempDir())
	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)

	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)

	assert.Equal(t, []string{"Pockit"}, parsed.Subject.Organization)
	assert.Contains(t, parsed.DNSNames, "localhost")
	assert.Len(t, parsed.IPAddresses, 2)
	assert.Contains(t, parsed.ExtKeyUsage, x509.ExtKeyUsageServerAuth)
	assert.Equal(t, x509.ECDSA, parsed.PublicKeyAlgorithm)
}

func TestFileManager_TLSConfig(t *testing.T) {
	cfg, err := NewFileManager(t.TempDir()).TLSConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)
	assert.Equal(t, uint16(0x0303), cfg.MinVersion)
}
