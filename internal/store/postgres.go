package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"RUMBLER_BACK-END/internal/config"
	"RUMBLER_BACK-END/internal/models"
)

const schema = `
create table if not exists rumbler_profiles (
	user_id    text primary key,
	doc        jsonb not null,
	updated_at timestamptz not null
);
create table if not exists rumbler_likes (
	user_id    text not null,
	fighter_id text not null,
	created_at timestamptz not null default now(),
	primary key (user_id, fighter_id)
);
create table if not exists rumbler_match_decisions (
	user_id    text not null,
	fighter_id text not null,
	matched    boolean not null,
	decided_at timestamptz not null,
	primary key (user_id, fighter_id)
);
create table if not exists rumbler_matches (
	id         bigserial primary key,
	user_id    text not null,
	fighter_id text not null,
	created_at timestamptz not null,
	unique (user_id, fighter_id)
);
create table if not exists rumbler_fighters (
	fighter_id          text primary key,
	position            int not null,
	name                text not null,
	age                 int not null,
	gender              text not null,
	disciplines         text[] not null,
	weight_class        text not null,
	experience          text not null,
	record_amateur      text not null,
	record_professional text,
	distance_km         double precision not null,
	avatar_url          text
);
create table if not exists analytics_events (
	id         uuid primary key,
	name       text not null,
	user_id    text not null,
	payload    jsonb,
	created_at timestamptz not null
);
`

// OpenPool connects to Postgres with the pool settings from cfg and pings it
func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol keeps PgBouncer in transaction mode happy
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pcfg.ConnConfig.RuntimeParams["application_name"] = "rumbler-backend"
	pcfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.Database.QueryTimeout.Milliseconds(), 10)
	pcfg.MaxConns = cfg.Database.MaxConns
	pcfg.MinConns = cfg.Database.MinConns
	pcfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// PostgresStore implements every store interface on one pgx pool
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Stores exposes the Postgres backend through the store interfaces
func (s *PostgresStore) Stores() Stores {
	return Stores{Profiles: s, Swipes: s, Candidates: s, Pinger: s}
}

// Pool returns the underlying pool for components sharing the connection
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate creates the tables and seeds fighters when none exist
func (s *PostgresStore) Migrate(ctx context.Context, seed []models.Fighter) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var n int
	if err := s.pool.QueryRow(ctx, `select count(*) from rumbler_fighters`).Scan(&n); err != nil {
		return fmt.Errorf("count fighters: %w", err)
	}
	if n > 0 {
		return nil
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		const qIns = `
insert into rumbler_fighters(
	fighter_id, position, name, age, gender, disciplines, weight_class,
	experience, record_amateur, record_professional, distance_km, avatar_url
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
on conflict (fighter_id) do nothing`
		for i, f := range seed {
			if _, err := tx.Exec(ctx, qIns,
				f.FighterID, i, f.Name, f.Age, f.Gender, f.Disciplines, f.WeightClass,
				f.Experience, f.Record.Amateur, f.Record.Professional, f.DistanceKm, f.AvatarURL,
			); err != nil {
				return fmt.Errorf("seed fighter %s: %w", f.FighterID, err)
			}
		}
		return nil
	})
}

// ---------- profiles ----------

func (s *PostgresStore) Get(ctx context.Context, userID string) (models.Profile, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `select doc from rumbler_profiles where user_id = $1`, userID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Profile{}, ErrNotFound
		}
		return models.Profile{}, fmt.Errorf("select profile: %w", err)
	}
	var p models.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Put(ctx context.Context, userID string, p models.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	const q = `
insert into rumbler_profiles(user_id, doc, updated_at) values ($1, $2::jsonb, $3)
on conflict (user_id) do update set doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := s.pool.Exec(ctx, q, userID, string(doc), p.UpdatedAt); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, `delete from rumbler_profiles where user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ---------- swipes ----------

func (s *PostgresStore) AddLike(ctx context.Context, userID, fighterID string) error {
	const q = `insert into rumbler_likes(user_id, fighter_id) values ($1, $2) on conflict do nothing`
	if _, err := s.pool.Exec(ctx, q, userID, fighterID); err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveLike(ctx context.Context, userID, fighterID string) error {
	const q = `delete from rumbler_likes where user_id = $1 and fighter_id = $2`
	if _, err := s.pool.Exec(ctx, q, userID, fighterID); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (s *PostgresStore) Likes(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `select fighter_id from rumbler_likes where user_id = $1 order by fighter_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select likes: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan likes: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func (s *PostgresStore) DecideOnce(ctx context.Context, userID, fighterID string, d models.MatchDecision) (models.MatchDecision, error) {
	const qIns = `
insert into rumbler_match_decisions(user_id, fighter_id, matched, decided_at)
values ($1, $2, $3, $4)
on conflict (user_id, fighter_id) do nothing
returning matched, decided_at`
	var out models.MatchDecision
	err := s.pool.QueryRow(ctx, qIns, userID, fighterID, d.Matched, d.DecidedAt).Scan(&out.Matched, &out.DecidedAt)
	if err == nil {
		out.DecidedAt = out.DecidedAt.UTC()
		return out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.MatchDecision{}, fmt.Errorf("insert decision: %w", err)
	}

	// lost the race or decided earlier: read what is stored
	const qSel = `select matched, decided_at from rumbler_match_decisions where user_id = $1 and fighter_id = $2`
	if err := s.pool.QueryRow(ctx, qSel, userID, fighterID).Scan(&out.Matched, &out.DecidedAt); err != nil {
		return models.MatchDecision{}, fmt.Errorf("select decision: %w", err)
	}
	out.DecidedAt = out.DecidedAt.UTC()
	return out, nil
}

func (s *PostgresStore) AddMatch(ctx context.Context, userID string, m models.Match) (models.Match, error) {
	const qIns = `
insert into rumbler_matches(user_id, fighter_id, created_at) values ($1, $2, $3)
on conflict (user_id, fighter_id) do nothing
returning fighter_id, created_at`
	var out models.Match
	err := s.pool.QueryRow(ctx, qIns, userID, m.FighterID, m.CreatedAt).Scan(&out.FighterID, &out.CreatedAt)
	if err == nil {
		out.CreatedAt = out.CreatedAt.UTC()
		return out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Match{}, fmt.Errorf("insert match: %w", err)
	}

	const qSel = `select fighter_id, created_at from rumbler_matches where user_id = $1 and fighter_id = $2`
	if err := s.pool.QueryRow(ctx, qSel, userID, m.FighterID).Scan(&out.FighterID, &out.CreatedAt); err != nil {
		return models.Match{}, fmt.Errorf("select match: %w", err)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return out, nil
}

func (s *PostgresStore) Matches(ctx context.Context, userID string) ([]models.Match, error) {
	const q = `select fighter_id, created_at from rumbler_matches where user_id = $1 order by id`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	defer rows.Close()

	out := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.FighterID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// ---------- candidates ----------

func (s *PostgresStore) Query(ctx context.Context, dq models.DeckQuery) ([]models.Fighter, error) {
	const q = `
select fighter_id, name, age, gender, disciplines, weight_class, experience,
       record_amateur, record_professional, distance_km, avatar_url
from rumbler_fighters
where ($1::float8 <= 0 or distance_km <= $1::float8)
  and ($2::text is null or exists (select 1 from unnest(disciplines) d where lower(d) = lower($2::text)))
  and ($3::text is null or experience = $3::text)
  and ($4::text is null or gender = $4::text)
order by position`

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.pool.Query(queryCtx, q, dq.Distance, dq.Discipline, dq.Experience, dq.Gender)
	if err != nil {
		return nil, fmt.Errorf("select fighters: %w", err)
	}
	defer rows.Close()

	out := []models.Fighter{}
	for rows.Next() {
		var f models.Fighter
		if err := rows.Scan(
			&f.FighterID, &f.Name, &f.Age, &f.Gender, &f.Disciplines, &f.WeightClass, &f.Experience,
			&f.Record.Amateur, &f.Record.Professional, &f.DistanceKm, &f.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("scan fighter: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
