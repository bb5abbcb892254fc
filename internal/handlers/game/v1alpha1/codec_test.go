package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

func TestStructCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestStructCodecRoundTrip(t *testing.T) {
	codec := structCodec{}
	in := &AttackResponse{
		Battle: &battle.Battle{
			ID:      "battle_1",
			State:   battle.StateWon,
			Round:   3,
			Enemy:   battle.Combatant{EntityID: 2, Stats: entities.Stats{HP: 30, Atk: 8}},
			Outcome: &battle.Outcome{XPAwarded: 55, Captured: true, CapturedOwnedID: "owned_1"},
		},
		Applied:  true,
		Captured: &entities.OwnedEntity{ID: "owned_1", EntityID: 2, Level: 1},
	}

	data, err := codec.Marshal(in)
	require.NoError(t, err)

	// the bytes are a plain protobuf Struct keyed by json names
	st := &structpb.Struct{}
	require.NoError(t, proto.Unmarshal(data, st))
	assert.True(t, st.Fields["applied"].GetBoolValue())
	assert.Equal(t, "battle_1", st.Fields["battle"].GetStructValue().Fields["id"].GetStringValue())

	out := &AttackResponse{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in.Battle.ID, out.Battle.ID)
	assert.Equal(t, battle.StateWon, out.Battle.State)
	assert.Equal(t, 30, out.Battle.Enemy.Stats.HP)
	assert.Equal(t, 55, out.Battle.Outcome.XPAwarded)
	assert.Equal(t, "owned_1", out.Captured.ID)
	assert.True(t, out.Applied)
}

func TestStructCodecPassesProtoMessagesThrough(t *testing.T) {
	codec := structCodec{}

	data, err := codec.Marshal(wrapperspb.String("ping"))
	require.NoError(t, err)

	out := &wrapperspb.StringValue{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, "ping", out.GetValue())
}
