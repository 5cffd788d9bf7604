package sqlinline

const QCreateMigrationsTable = `--sql 7be9b97f-4737-4c53-9bc1-bf645da9e5da
create table if not exists schema_migrations (
  version text primary key,
  applied_at timestamptz not null default now()
);
`

const QListAppliedMigrations = `--sql 0ef81435-6a20-4839-bb46-e0cdf9d89bb6
select version from schema_migrations order by version asc;
`

const QInsertMigration = `--sql e37d2a8c-af9c-4dfc-96ec-85dea04fe69b
insert into schema_migrations(version) values ($1::text);
`
