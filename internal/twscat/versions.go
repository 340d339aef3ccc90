package twscat

// ServerVersion gates field presence in both directions. It is set once
// at handshake and never mutated afterward (§3 invariant).
type ServerVersion int

// Gate version constants: the server version in which a given field was
// introduced. Encoders and parsers compare the connection's negotiated
// ServerVersion against these at runtime; none of them is ever baked in
// as "the" version the build targets.
const (
	MinServerVersion ServerVersion = 100
	MaxServerVersion ServerVersion = 178

	VMktDataPrimaryExchange   ServerVersion = 47
	VTradingClass             ServerVersion = 68
	VLastTradeDate            ServerVersion = 75
	VAggregateGroup           ServerVersion = 158
	VOrderContainer           ServerVersion = 141
	VLinking                  ServerVersion = 118
	VFractionalPositions      ServerVersion = 152
	VModelsSupport            ServerVersion = 103
	VServiceDataType          ServerVersion = 142
	VScaleTable               ServerVersion = 113
	VPegBestPegMid            ServerVersion = 166
	VCashQty                  ServerVersion = 144
	VAutoCancelParent         ServerVersion = 145
	VManualOrderTime          ServerVersion = 160
	VAdvancedOrderRejectJSON  ServerVersion = 162
	VSmartDepth               ServerVersion = 126
	VMktDepthPrimExchange     ServerVersion = 145
	VCompletedTime            ServerVersion = 153
	VSizeRules                ServerVersion = 158
	VHistoricalSchedule       ServerVersion = 138
	VBondTradingHours         ServerVersion = 150
	VIncludeOvernight         ServerVersion = 157
	VPriceMgmtAlgo            ServerVersion = 151
	VDurationUnit             ServerVersion = 155
	VMarketDataInEurope       ServerVersion = 171
	VWhatIfExtFields          ServerVersion = 136
	VUndoRFQFields            ServerVersion = 122
)

// At reports whether v is new enough that the gated field is present.
func (v ServerVersion) At(gate ServerVersion) bool {
	return v >= gate
}
