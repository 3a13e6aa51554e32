package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Transport Operations ───────────────────────────────────────────────────

// AddTransportVehicle attaches vehicle to the named transport.
func (db *DB) AddTransportVehicle(ctx context.Context, name, vehicle string) error {
	res, err := db.q.ExecContext(ctx, `
		INSERT INTO transport_vehicles (name, vehicle, vehicle_key, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name, vehicle_key) DO NOTHING
	`, name, vehicle, domain.VehicleKey(vehicle), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("add transport vehicle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTransportVehicleExists
	}
	return nil
}

// RemoveTransportVehicle detaches vehicle; the transport disappears with
// its last vehicle.
func (db *DB) RemoveTransportVehicle(ctx context.Context, name, vehicle string) error {
	res, err := db.q.ExecContext(ctx,
		`DELETE FROM transport_vehicles WHERE name = ? AND vehicle_key = ?`,
		name, domain.VehicleKey(vehicle))
	if err != nil {
		return fmt.Errorf("remove transport vehicle: %w", err)
	}
	return requireAffected(res, domain.ErrTransportVehicleAbsent)
}

// ListTransports groups vehicles by transport name, names sorted.
func (db *DB) ListTransports(ctx context.Context) ([]domain.Transport, error) {
	rows, err := db.q.QueryContext(ctx, `
		SELECT name, vehicle FROM transport_vehicles ORDER BY name, added_at, vehicle_key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transport
	for rows.Next() {
		var name, vehicle string
		if err := rows.Scan(&name, &vehicle); err != nil {
			return nil, err
		}
		if n := len(result); n > 0 && result[n-1].Name == name {
			result[n-1].Vehicles = append(result[n-1].Vehicles, vehicle)
			continue
		}
		result = append(result, domain.Transport{Name: name, Vehicles: []string{vehicle}})
	}
	return result, rows.Err()
}
