package ptv

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/signer"
)

const (
	stopsNearPath = "/v3/stops/location/%s,%s"
	routesPath    = "/v3/routes"
)

// buildStopsRequest assembles the stops-near query and signs it.
// Parameter order is part of the signed string.
func buildStopsRequest(q repository.StopQuery, creds domain.Credentials) (domain.SignedRequest, error) {
	path := fmt.Sprintf(stopsNearPath, formatFloat(q.Origin.Latitude), formatFloat(q.Origin.Longitude))
	query := []domain.QueryParam{
		{Key: "route_types", Value: strconv.Itoa(q.Mode.RouteType())},
		{Key: "max_results", Value: strconv.Itoa(q.MaxResults)},
		{Key: "max_distance", Value: formatFloat(q.MaxDistanceMeters)},
	}
	return signRequest(path, query, creds)
}

func buildRoutesRequest(stopID int64, mode domain.TransportMode, creds domain.Credentials) (domain.SignedRequest, error) {
	query := []domain.QueryParam{
		{Key: "route_types", Value: strconv.Itoa(mode.RouteType())},
		{Key: "stop_id", Value: strconv.FormatInt(stopID, 10)},
	}
	return signRequest(routesPath, query, creds)
}

// signRequest appends devid, then signs the final path+query.
// Nothing may touch the query after this point.
func signRequest(path string, query []domain.QueryParam, creds domain.Credentials) (domain.SignedRequest, error) {
	query = append(query, domain.QueryParam{Key: "devid", Value: url.QueryEscape(creds.UserID)})

	signature, err := signer.Sign(domain.RenderPathWithQuery(path, query), creds.APIKey)
	if err != nil {
		return domain.SignedRequest{}, fmt.Errorf("sign request: %w", err)
	}

	return domain.SignedRequest{
		Path:      path,
		Query:     query,
		Signature: signature,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
