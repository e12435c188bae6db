package snmp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	packet    *gosnmp.SnmpPacket
	err       error
	requested [][]string
	closed    bool
}

func (s *fakeSession) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	s.requested = append(s.requested, oids)
	return s.packet, s.err
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func fakeDialer(s *fakeSession) Dialer {
	return func(ctx context.Context, opts *ClientOptions) (Session, error) {
		return s, nil
	}
}

func connectedClient(t *testing.T, s *fakeSession, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithTarget("ups1.example.net"), WithDialer(fakeDialer(s))}, opts...)
	c := NewClient(opts...)
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	opts := c.Options()
	assert.Equal(t, DefaultPort, opts.Port)
	assert.Equal(t, Version2c, opts.Version)
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, 0, opts.Retries)
	assert.NotNil(t, opts.Dialer)
}

func TestWithTimeoutIgnoresZero(t *testing.T) {
	c := NewClient(WithTimeout(0))
	assert.Equal(t, DefaultTimeout, c.Options().Timeout)

	c = NewClient(WithTimeout(7 * time.Second))
	assert.Equal(t, 7*time.Second, c.Options().Timeout)
}

func TestConnectRequiresTarget(t *testing.T) {
	c := NewClient(WithDialer(fakeDialer(&fakeSession{})))
	err := c.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestConnectTwice(t *testing.T) {
	c := connectedClient(t, &fakeSession{})
	assert.ErrorIs(t, c.Connect(context.Background()), ErrAlreadyConnected)
}

func TestConnectDialFailure(t *testing.T) {
	c := NewClient(
		WithTarget("ups1.example.net"),
		WithDialer(func(ctx context.Context, opts *ClientOptions) (Session, error) {
			return nil, errors.New("no such host")
		}),
	)
	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, IsQueryError(err))
	assert.Contains(t, err.Error(), "no such host")
}

func TestDialerReceivesOptions(t *testing.T) {
	var got *ClientOptions
	c := NewClient(
		WithTarget("10.0.0.5"),
		WithPort(1161),
		WithCommunity("secret"),
		WithVersion(Version1),
		WithDialer(func(ctx context.Context, opts *ClientOptions) (Session, error) {
			got = opts
			return &fakeSession{}, nil
		}),
	)
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()

	require.NotNil(t, got)
	assert.Equal(t, "10.0.0.5", got.Target)
	assert.Equal(t, 1161, got.Port)
	assert.Equal(t, "secret", got.Community)
	assert.Equal(t, Version1, got.Version)
}

func TestGetManufacturer(t *testing.T) {
	s := &fakeSession{packet: &gosnmp.SnmpPacket{
		Variables: []gosnmp.SnmpPDU{{
			Name:  "." + OIDManufacturer,
			Type:  gosnmp.OctetString,
			Value: []byte("American Power Conversion"),
		}},
	}}
	c := connectedClient(t, s)

	result, err := c.Get(context.Background(), OIDManufacturer)
	require.NoError(t, err)
	require.Equal(t, 1, result.Len())

	v, ok := result.Lookup(OIDManufacturer)
	require.True(t, ok)
	assert.True(t, StringValue("American Power Conversion").Equal(v))

	first, ok := result.First()
	require.True(t, ok)
	assert.Equal(t, OIDManufacturer, first.OID)
	assert.Equal(t, "STRING", first.Type)

	assert.Equal(t, [][]string{{OIDManufacturer}}, s.requested)
	assert.Contains(t, result.Map(), OIDManufacturer)

	snap := c.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.RequestsSent)
	assert.Equal(t, int64(1), snap.ResponsesReceived)
	assert.Equal(t, int64(1), snap.VarbindsReceived)
	assert.Equal(t, int64(0), snap.Errors)
	assert.Equal(t, int64(1), snap.RequestLatency.Count)
}

func TestGetCoercesNumericValues(t *testing.T) {
	s := &fakeSession{packet: &gosnmp.SnmpPacket{
		Variables: []gosnmp.SnmpPDU{
			{Name: ".1.3.6.1.2.1.33.1.2.3.0", Type: gosnmp.Integer, Value: 42},
			{Name: ".1.3.6.1.2.1.33.1.3.3.1.3.1", Type: gosnmp.OctetString, Value: []byte("3.14")},
		},
	}}
	c := connectedClient(t, s)

	result, err := c.Get(context.Background(), "1.3.6.1.2.1.33.1.2.3.0", "1.3.6.1.2.1.33.1.3.3.1.3.1")
	require.NoError(t, err)

	v, ok := result.Lookup("1.3.6.1.2.1.33.1.2.3.0")
	require.True(t, ok)
	i, isInt := v.Int()
	assert.True(t, isInt)
	assert.Equal(t, int64(42), i)

	v, ok = result.Lookup(".1.3.6.1.2.1.33.1.3.3.1.3.1")
	require.True(t, ok)
	f, isFloat := v.Float()
	assert.True(t, isFloat)
	assert.Equal(t, 3.14, f)
}

func TestGetErrorIndication(t *testing.T) {
	s := &fakeSession{err: errors.New("request timeout (after 0 retries)")}
	c := connectedClient(t, s)

	_, err := c.Get(context.Background(), OIDManufacturer)
	require.Error(t, err)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "request timeout (after 0 retries)", qe.Indication)
	assert.Contains(t, err.Error(), "request timeout")
	assert.Equal(t, int64(1), c.Metrics().Snapshot().Errors)
	assert.Len(t, s.requested, 1, "request must not be retried by the client")
}

func TestGetErrorStatus(t *testing.T) {
	s := &fakeSession{packet: &gosnmp.SnmpPacket{
		Error:      gosnmp.NoSuchName,
		ErrorIndex: 1,
		Variables: []gosnmp.SnmpPDU{{
			Name: "." + OIDManufacturer,
			Type: gosnmp.Null,
		}},
	}}
	c := connectedClient(t, s)

	_, err := c.Get(context.Background(), OIDManufacturer)
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "noSuchName", qe.Status)
	assert.Equal(t, 1, qe.Index)
	assert.Equal(t, OIDManufacturer, qe.OID)
	assert.Contains(t, err.Error(), "noSuchName")
}

func TestGetNoResults(t *testing.T) {
	for name, packet := range map[string]*gosnmp.SnmpPacket{
		"empty packet": {},
		"nil packet":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			c := connectedClient(t, &fakeSession{packet: packet})
			_, err := c.Get(context.Background(), OIDManufacturer)
			assert.ErrorIs(t, err, ErrNoResults)
			assert.True(t, IsNoResults(err))
		})
	}
}

func TestGetInvalidOID(t *testing.T) {
	s := &fakeSession{}
	c := connectedClient(t, s)

	_, err := c.Get(context.Background(), "1.3.six.1")
	assert.ErrorIs(t, err, ErrInvalidOID)
	assert.Empty(t, s.requested)

	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoOIDs)
}

func TestGetNotConnected(t *testing.T) {
	c := NewClient(WithTarget("ups1.example.net"))
	_, err := c.Get(context.Background(), OIDManufacturer)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestGetCanceledContext(t *testing.T) {
	s := &fakeSession{}
	c := connectedClient(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, OIDManufacturer)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.requested)
}

func TestCloseReleasesSession(t *testing.T) {
	s := &fakeSession{}
	c := NewClient(WithTarget("ups1.example.net"), WithDialer(fakeDialer(s)))
	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.Close())
	assert.True(t, s.closed)
	assert.NoError(t, c.Close())
}

func TestParseVersion(t *testing.T) {
	for _, in := range []string{"1", "v1", "V1"} {
		v, err := ParseVersion(in)
		require.NoError(t, err)
		assert.Equal(t, Version1, v)
	}
	for _, in := range []string{"2c", "v2c", "2"} {
		v, err := ParseVersion(in)
		require.NoError(t, err)
		assert.Equal(t, Version2c, v)
	}
	_, err := ParseVersion("3")
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestParseOID(t *testing.T) {
	oid, err := ParseOID(".1.3.6.1.4.1.534.1.1.1.0")
	require.NoError(t, err)
	assert.Equal(t, OIDManufacturer, oid.String())

	for _, bad := range []string{"", ".", "1..3", "1.3.-6", "abc"} {
		_, err := ParseOID(bad)
		assert.ErrorIs(t, err, ErrInvalidOID, bad)
	}
}
