package postgres

import (
	"context"
	"fmt"

	"github.com/tagcenter/tagcenter/internal/domain"
)

func (db *DB) AddTransportVehicle(ctx context.Context, name, vehicle string) error {
	tag, err := db.q.Exec(ctx, `
		INSERT INTO transport_vehicles (name, vehicle, vehicle_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, vehicle_key) DO NOTHING
	`, name, vehicle, domain.VehicleKey(vehicle))
	if err != nil {
		return fmt.Errorf("add transport vehicle: %w", err)
	}
	return requireAffected(tag, domain.ErrTransportVehicleExists)
}

func (db *DB) RemoveTransportVehicle(ctx context.Context, name, vehicle string) error {
	tag, err := db.q.Exec(ctx,
		`DELETE FROM transport_vehicles WHERE name = $1 AND vehicle_key = $2`,
		name, domain.VehicleKey(vehicle))
	if err != nil {
		return fmt.Errorf("remove transport vehicle: %w", err)
	}
	return requireAffected(tag, domain.ErrTransportVehicleAbsent)
}

func (db *DB) ListTransports(ctx context.Context) ([]domain.Transport, error) {
	rows, err := db.q.Query(ctx, `
		SELECT name, array_agg(vehicle ORDER BY added_at, vehicle_key)
		FROM transport_vehicles
		GROUP BY name ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transport
	for rows.Next() {
		var t domain.Transport
		if err := rows.Scan(&t.Name, &t.Vehicles); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
