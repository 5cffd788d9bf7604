package sqlinline

const mercantileColumns = `
  m.id::text,
  m.company_name,
  m.rnc,
  m.company_type,
  m.chamber,
  m.registry_number,
  m.entity_id::text,
  e.name,
  m.status,
  m.registered_at,
  m.renewal_date,
  m.renewal_cost,
  m.notes,
  m.created_at,
  m.updated_at
from mercantile_records m
left join entities e on e.id = m.entity_id
`

const QListMercantile = `--sql b130f314-f0f2-418d-a4a4-8ab854fbb655
select` + mercantileColumns + `
order by m.company_name asc;
`

const QListRenewingMercantile = `--sql 8d1ce626-474b-49a2-9be4-91be79005b74
select` + mercantileColumns + `
where m.renewal_date is not null
order by m.renewal_date asc, m.company_name asc
limit nullif($1::int, 0);
`

const QSelectMercantileByID = `--sql 69775ad9-77ea-4b24-8ee1-a2afe4f19bf1
select` + mercantileColumns + `
where m.id = $1::uuid
limit 1;
`

const QInsertMercantile = `--sql b25be83b-df57-4d83-86b9-efd06271849e
insert into mercantile_records(
  company_name, rnc, company_type, chamber, registry_number, entity_id, status,
  registered_at, renewal_date, renewal_cost, notes
) values (
  $1::text, $2::text, $3::text, $4::text, $5::text, $6::uuid, $7::text,
  $8::date, $9::date, $10::numeric, $11::text
)
returning id::text, created_at, updated_at;
`

const QUpdateMercantile = `--sql 967519ec-116f-4ba0-9b6c-c67485c94f15
update mercantile_records set
  company_name = $2::text,
  rnc = $3::text,
  company_type = $4::text,
  chamber = $5::text,
  registry_number = $6::text,
  entity_id = $7::uuid,
  status = $8::text,
  registered_at = $9::date,
  renewal_date = $10::date,
  renewal_cost = $11::numeric,
  notes = $12::text,
  updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteMercantile = `--sql a002e96f-ab41-498a-8ed1-fe109003cf8e
delete from mercantile_records where id = $1::uuid;
`
