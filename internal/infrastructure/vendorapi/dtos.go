package vendorapi

// Vendor wire format. Every scalar arrives wrapped as {"value": ..., "type": ...}
// with the value serialized as a string, booleans as the literal "True"/"False"
// and absent capabilities tagged with type "Null". None of these shapes leak
// past the normalizer.

const (
	responseTypeJSON = "JSON"
	statusNotFound   = "404"
	typeNull         = "Null"
	literalTrue      = "True"
)

const (
	serviceVehicleInfo    = "getVehicleInfoService"
	serviceSecurityStatus = "getSecurityStatusService"
	serviceEnergy         = "getEnergyService"
	serviceActionEngine   = "actionEngineService"
)

type vendorRequest struct {
	ID           string `json:"id"`
	Command      string `json:"command,omitempty"`
	ResponseType string `json:"responseType"`
}

type wireValue struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

type vehicleInfoResponse struct {
	Status string           `json:"status"`
	Data   *vehicleInfoData `json:"data"`
}

type vehicleInfoData struct {
	VIN           wireValue `json:"vin"`
	Color         wireValue `json:"color"`
	FourDoorSedan wireValue `json:"fourDoorSedan"`
	TwoDoorCoupe  wireValue `json:"twoDoorCoupe"`
	DriveTrain    wireValue `json:"driveTrain"`
}

type securityStatusResponse struct {
	Status string              `json:"status"`
	Data   *securityStatusData `json:"data"`
}

type securityStatusData struct {
	Doors doorList `json:"doors"`
}

type doorList struct {
	Type   string       `json:"type"`
	Values []doorRecord `json:"values"`
}

type doorRecord struct {
	Location wireValue `json:"location"`
	Locked   wireValue `json:"locked"`
}

type energyResponse struct {
	Status string      `json:"status"`
	Data   *energyData `json:"data"`
}

type energyData struct {
	TankLevel    wireValue `json:"tankLevel"`
	BatteryLevel wireValue `json:"batteryLevel"`
}

type engineActionResponse struct {
	Status       string            `json:"status"`
	ActionResult *actionResultData `json:"actionResult"`
}

type actionResultData struct {
	Status string `json:"status"`
}
