package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Ordered startup migrations. The original deployment evolved its schema with
// conditional DDL fired from request handlers; here every statement runs once
// at boot, tracked in schema_migrations by version number.
type migration struct {
	Version int
	Name    string
	Stmts   []string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "accounts",
		Stmts: []string{
			`create extension if not exists pgcrypto`,
			`create table if not exists students (
				id uuid primary key default gen_random_uuid(),
				student_no text not null unique,
				cca_email text not null unique,
				last_name text not null,
				first_name text not null,
				second_name text,
				middle_initial text,
				school_year text,
				program text not null,
				section text not null,
				password text not null default '',
				activation_code text not null default '',
				recovery_code text,
				active_status boolean not null default false,
				is_password_temp boolean not null default true,
				profile_path text
			)`,
			`create table if not exists practicum_coordinators (
				id uuid primary key default gen_random_uuid(),
				cca_email text not null unique,
				last_name text not null,
				first_name text not null,
				second_name text,
				middle_initial text,
				password text not null default '',
				activation_code text,
				recovery_code text,
				active_status boolean not null default false,
				is_password_temp boolean not null default true,
				profile_path text
			)`,
			`create table if not exists practicum_instructors (
				id uuid primary key default gen_random_uuid(),
				cca_email text not null unique,
				last_name text not null,
				first_name text not null,
				second_name text,
				middle_initial text,
				password text not null default '',
				activation_code text,
				recovery_code text,
				active_status boolean not null default false,
				is_password_temp boolean not null default true,
				profile_path text
			)`,
		},
	},
	{
		Version: 2,
		Name:    "student_requirements",
		Stmts: []string{
			`create table if not exists student_requirements (
				id uuid primary key default gen_random_uuid(),
				student_id uuid not null unique references students(id) on delete cascade,
				student_no text not null,
				last_name text not null,
				first_name text not null,
				second_name text,
				middle_initial text,
				program text not null default '',
				section text not null default '',
				school_year text not null default '',
				practicum_application boolean not null default false,
				letter_of_intent boolean not null default false,
				endorsement_letter boolean not null default false,
				practicum_parental_consent boolean not null default false,
				acceptance_form boolean not null default false,
				reply_form boolean not null default false,
				practicum_training_agreement boolean not null default false,
				attendance_sheet boolean not null default false,
				weekly_journal boolean not null default false,
				transmittal_form boolean not null default false,
				evaluation_form boolean not null default false,
				outreach_program_design boolean not null default false,
				outreach_post_activity_report boolean not null default false,
				ojt_log_sheet boolean not null default false,
				requirements_checklist boolean not null default false,
				cca_hymn boolean not null default false,
				start_of_ojt date
			)`,
		},
	},
	{
		Version: 3,
		Name:    "attendance_sheet_dtr",
		Stmts: []string{
			`create table if not exists attendance_sheet_dtr (
				id uuid primary key default gen_random_uuid(),
				student_id uuid not null unique references students(id) on delete cascade,
				january_hours int not null default 0 check (january_hours >= 0),
				february_hours int not null default 0 check (february_hours >= 0),
				march_hours int not null default 0 check (march_hours >= 0),
				april_hours int not null default 0 check (april_hours >= 0),
				may_hours int not null default 0 check (may_hours >= 0),
				june_hours int not null default 0 check (june_hours >= 0),
				created_at timestamptz not null default now(),
				updated_at timestamptz not null default now()
			)`,
		},
	},
	{
		Version: 4,
		Name:    "sections",
		Stmts: []string{
			`create table if not exists section_list (
				id uuid primary key default gen_random_uuid(),
				section text not null,
				school_year text not null,
				created_at timestamptz not null default now(),
				unique (section, school_year)
			)`,
			`create table if not exists section_instructors (
				id uuid primary key default gen_random_uuid(),
				section_id uuid not null references section_list(id) on delete cascade,
				instructor_id uuid references practicum_instructors(id) on delete cascade,
				coordinator_id uuid references practicum_coordinators(id) on delete cascade,
				assigned_at timestamptz not null default now(),
				unique (section_id)
			)`,
		},
	},
	{
		Version: 5,
		Name:    "weekly_journal",
		Stmts: []string{
			`create table if not exists submission_schedules (
				id uuid primary key default gen_random_uuid(),
				section text not null unique,
				submission_day int not null check (submission_day between 0 and 6),
				created_at timestamptz not null default now()
			)`,
			`create table if not exists weekly_journal (
				id uuid primary key default gen_random_uuid(),
				student_id uuid not null references students(id) on delete cascade,
				section text not null,
				year int not null,
				month int not null,
				week_no int not null,
				due_date date not null,
				submission_day int not null,
				submitted_at timestamptz,
				status text check (status in ('late', 'late_excused') or status is null),
				status_override boolean not null default false,
				status_note text,
				unique (student_id, section, year, month, week_no)
			)`,
			`create index if not exists weekly_journal_section_year_idx
				on weekly_journal (section, year, due_date)`,
		},
	},
	{
		Version: 6,
		Name:    "company_checklist",
		Stmts: []string{
			`create table if not exists company_checklist (
				id uuid primary key default gen_random_uuid(),
				company_name text not null default '',
				city_resolution_checked boolean not null default false,
				city_resolution_passed_at timestamptz,
				city_resolution_status text
					check (city_resolution_status in ('pending', 'approved') or city_resolution_status is null),
				city_resolution_returned_at timestamptz,
				company_signing_checked boolean not null default false,
				company_signing_passed_at timestamptz,
				office_president_checked boolean not null default false,
				office_president_passed_at timestamptz,
				processed_notarized_checked boolean not null default false,
				processed_notarized_passed_at timestamptz,
				created_at timestamptz not null default now(),
				updated_at timestamptz not null default now()
			)`,
			`create index if not exists company_checklist_created_at_idx
				on company_checklist (created_at)`,
			`create or replace function set_company_checklist_updated_at()
			returns trigger
			language plpgsql
			as $$
			begin
				new.updated_at := now();
				return new;
			end;
			$$`,
			`drop trigger if exists company_checklist_updated_at_trg on company_checklist`,
			`create trigger company_checklist_updated_at_trg
				before update on company_checklist
				for each row
				execute function set_company_checklist_updated_at()`,
		},
	},
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`create table if not exists schema_migrations (
		version int primary key,
		name text not null,
		applied_at timestamptz not null default now()
	)`).Error; err != nil {
		return fmt.Errorf("schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied bool
		if err := db.Raw(
			`select exists(select 1 from schema_migrations where version = ?)`, m.Version,
		).Scan(&applied).Error; err != nil {
			return fmt.Errorf("migration %d check: %w", m.Version, err)
		}
		if applied {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range m.Stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return tx.Exec(
				`insert into schema_migrations (version, name) values (?, ?)`,
				m.Version, m.Name,
			).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		log.Printf("[INFO] migration %d (%s) applied", m.Version, m.Name)
	}
	return nil
}
